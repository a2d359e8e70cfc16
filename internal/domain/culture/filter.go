package culture

import (
	"strings"

	"github.com/nadira/tripstylist/internal/domain/catalog"
)

// Scored pairs a catalog product with its cultural appropriateness score.
type Scored struct {
	Product       catalog.Product
	CulturalScore float64
}

const baseCulturalScore = 0.5

// FilterProducts drops products violating any applicable taboo phrase and
// scores the survivors. Exclusion is hard: a tabooed product never reaches
// downstream ranking. The applied taboo list is returned so the narrative
// layer can explain exclusions. Catalog order is preserved.
func (s *Store) FilterProducts(products []catalog.Product, destination, activity string) ([]Scored, []string) {
	taboos := s.Taboos(destination, activity)
	rules := s.Rules(destination)

	kept := make([]Scored, 0, len(products))
	for _, product := range products {
		if violation, ok := matchTaboo(product, taboos); ok {
			s.logger.Debug("product excluded by cultural taboo",
				"product", product.ID, "taboo", violation, "destination", destination)
			continue
		}
		kept = append(kept, Scored{
			Product:       product,
			CulturalScore: culturalScore(product, rules),
		})
	}
	return kept, taboos
}

// matchTaboo reports which taboo phrase, if any, appears as a case-insensitive
// substring of the product text. Matching is deliberately literal: phrases are
// not negation-aware.
func matchTaboo(product catalog.Product, taboos []string) (string, bool) {
	for _, taboo := range taboos {
		if product.MatchesText(taboo) {
			return taboo, true
		}
	}
	return "", false
}

func culturalScore(product catalog.Product, rules Rules) float64 {
	score := baseCulturalScore

	if product.HasCategory("accessories") || product.HasCategory("clothing") {
		score += 0.2
	}

	note := strings.ToLower(rules.GiftCulture)
	if strings.Contains(note, "jewelry") && product.HasCategory("jewelry") {
		score += 0.3
	}
	if strings.Contains(note, "traditional") && strings.Contains(strings.ToLower(product.Name), "traditional") {
		score += 0.3
	}

	if score > 1 {
		score = 1
	}
	return score
}
