package catalog

import (
	"context"
	"strings"
)

// Query narrows a catalog fetch. Empty fields mean "no constraint".
type Query struct {
	Category string
	Search   string
}

// Provider abstracts the product catalog source. Implementations live under
// internal/infra/catalogsrc (HTTP boutique service, Postgres, seeded memory).
type Provider interface {
	Products(ctx context.Context, query Query) ([]Product, error)
}

// FilterLocal applies a Query against an already fetched product list.
// Providers that cannot filter server side share this behavior.
func FilterLocal(products []Product, query Query) []Product {
	out := products
	if cat := query.Category; cat != "" {
		filtered := make([]Product, 0, len(out))
		for _, p := range out {
			if containsCategory(p, cat) {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	if query.Search != "" {
		filtered := make([]Product, 0, len(out))
		for _, p := range out {
			if p.MatchesText(query.Search) {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	return out
}

func containsCategory(p Product, category string) bool {
	needle := strings.ToLower(category)
	for _, cat := range p.Categories {
		if strings.Contains(strings.ToLower(cat), needle) {
			return true
		}
	}
	return false
}
