package recommend

import (
	"strings"

	"github.com/nadira/tripstylist/internal/domain/culture"
)

// Keyword buckets for matching products against a temperature band. A
// product passes on a name/description keyword or a category tag.
var (
	coldKeywords   = []string{"jacket", "coat", "sweater", "hoodie", "warm", "winter", "wool", "thermal"}
	coldCategories = []string{"cold", "winter", "outerwear"}

	hotKeywords   = []string{"tank", "shorts", "t-shirt", "sunglasses", "hat", "summer", "light", "breathable"}
	hotCategories = []string{"hot", "summer"}

	mildKeywords   = []string{"jacket", "layers", "light", "casual"}
	mildCategories = []string{"mild", "all-weather", "clothing"}
)

// Thresholds splitting the year into the three packing bands.
const (
	coldBelowC = 10.0
	hotAboveC  = 25.0
)

const allWeatherCap = 5

// ClimateFilter keeps the products suited to the expected temperature,
// preserving input order and scores. The clothing hint is the month's
// packing advice; under an extreme weather description its phrases count
// as extra match terms. It degrades rather than empties: when nothing
// matches the band it falls back to all-weather tagged items, then to the
// head of the input. Only an empty input yields an empty output.
func ClimateFilter(items []culture.Scored, avgTempC float64, description, clothingHint string) []culture.Scored {
	keywords, categories := bucketFor(avgTempC)

	kept := make([]culture.Scored, 0, len(items))
	for _, item := range items {
		if matchesBucket(item, keywords, categories) || matchesCondition(item, description, clothingHint) {
			kept = append(kept, item)
		}
	}
	if len(kept) > 0 {
		return kept
	}

	for _, item := range items {
		if item.Product.HasCategory("all-weather") {
			kept = append(kept, item)
			if len(kept) == allWeatherCap {
				break
			}
		}
	}
	if len(kept) > 0 {
		return kept
	}

	if len(items) > 8 {
		return items[:8]
	}
	return items
}

func bucketFor(avgTempC float64) (keywords, categories []string) {
	switch {
	case avgTempC < coldBelowC:
		return coldKeywords, coldCategories
	case avgTempC > hotAboveC:
		return hotKeywords, hotCategories
	default:
		return mildKeywords, mildCategories
	}
}

func matchesBucket(item culture.Scored, keywords, categories []string) bool {
	for _, kw := range keywords {
		if item.Product.MatchesText(kw) {
			return true
		}
	}
	for _, cat := range categories {
		if item.Product.HasCategory(cat) {
			return true
		}
	}
	return false
}

// matchesCondition keeps a product when the month's weather description and
// the product text agree on an extreme, even if the bucket missed it. The
// clothing hint's comma-separated phrases extend the match terms.
func matchesCondition(item culture.Scored, description, clothingHint string) bool {
	desc := strings.ToLower(description)
	var phrases []string
	switch {
	case strings.Contains(desc, "cold") || strings.Contains(desc, "freezing"):
		phrases = []string{"heavy coat", "thermal", "warm layers"}
	case strings.Contains(desc, "hot"):
		phrases = []string{"breathable", "sun protection", "lightweight"}
	default:
		return false
	}
	for _, phrase := range phrases {
		if item.Product.MatchesText(phrase) {
			return true
		}
	}
	for _, phrase := range strings.Split(clothingHint, ",") {
		phrase = strings.TrimSpace(phrase)
		if phrase != "" && item.Product.MatchesText(phrase) {
			return true
		}
	}
	return false
}
