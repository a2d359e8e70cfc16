package catalog

import (
	"fmt"
	"strings"
)

// Price mirrors the catalog wire format: integer major units plus nano units.
type Price struct {
	CurrencyCode string `json:"currencyCode"`
	Units        int64  `json:"units"`
	Nanos        int32  `json:"nanos"`
}

// Display renders a human readable price string.
func (p Price) Display() string {
	if p.CurrencyCode == "" {
		return "price unavailable"
	}
	return fmt.Sprintf("%s %.2f", p.CurrencyCode, float64(p.Units)+float64(p.Nanos)/1e9)
}

// Product is read-only reference data owned by the catalog provider.
// The recommendation core never mutates one, it only annotates scored copies.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Picture     string   `json:"picture"`
	Price       Price    `json:"priceUsd"`
	Categories  []string `json:"categories"`
}

// HasCategory reports whether the product carries the category, case-insensitively.
func (p Product) HasCategory(category string) bool {
	for _, cat := range p.Categories {
		if strings.EqualFold(cat, category) {
			return true
		}
	}
	return false
}

// MatchesText reports whether needle appears as a case-insensitive substring
// of the product name, description, or any category.
func (p Product) MatchesText(needle string) bool {
	needle = strings.ToLower(needle)
	if needle == "" {
		return false
	}
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, cat := range p.Categories {
		if strings.Contains(strings.ToLower(cat), needle) {
			return true
		}
	}
	return false
}
