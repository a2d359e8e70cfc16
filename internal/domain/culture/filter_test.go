package culture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nadira/tripstylist/internal/domain/catalog"
)

func TestFilterProductsHardExclusion(t *testing.T) {
	store := newTestStore()

	products := []catalog.Product{
		{
			ID:          "PROB_BIKINI_042",
			Name:        "String Bikini",
			Description: "Minimal coverage bikini swimsuit.",
			Categories:  []string{"swimwear", "bikini", "revealing", "inappropriate-conservative"},
		},
		{
			ID:          "CLT_COTTON_006",
			Name:        "Organic Cotton T-Shirt",
			Description: "Soft, breathable organic cotton t-shirt.",
			Categories:  []string{"clothing", "summer", "hot", "breathable"},
		},
	}

	kept, taboos := store.FilterProducts(products, "Pakistan", "")
	require.NotEmpty(t, taboos)
	require.Len(t, kept, 1)
	require.Equal(t, "CLT_COTTON_006", kept[0].Product.ID)
}

func TestFilterProductsTabooInDescription(t *testing.T) {
	store := newTestStore()

	products := []catalog.Product{
		{
			ID:          "GIFT_WINE",
			Name:        "Gift Set",
			Description: "Premium alcohol collection for gifting.",
			Categories:  []string{"gifts"},
		},
	}

	kept, _ := store.FilterProducts(products, "Dubai", "")
	require.Empty(t, kept)
}

// The matcher is deliberately literal: an "alcohol" taboo also catches
// "alcohol-free" product text. Pinned so nobody "fixes" it silently.
func TestFilterProductsLiteralSubstringMatch(t *testing.T) {
	store := newTestStore()

	products := []catalog.Product{
		{
			ID:          "BEAUTY_TONER",
			Name:        "Face Toner",
			Description: "Gentle alcohol-free toner for sensitive skin.",
			Categories:  []string{"beauty"},
		},
	}

	kept, _ := store.FilterProducts(products, "Pakistan", "")
	require.Empty(t, kept)
}

func TestCulturalScoreBonuses(t *testing.T) {
	store := newTestStore()

	products := []catalog.Product{
		{ID: "plain", Name: "Travel Mug", Categories: []string{"kitchen"}},
		{ID: "cloth", Name: "Linen Shirt", Categories: []string{"clothing"}},
		{ID: "trad", Name: "Traditional Kurta", Categories: []string{"clothing"}},
	}

	kept, _ := store.FilterProducts(products, "Pakistan", "")
	require.Len(t, kept, 3)

	byID := map[string]float64{}
	for _, scored := range kept {
		byID[scored.Product.ID] = scored.CulturalScore
	}
	require.InDelta(t, 0.5, byID["plain"], 1e-9)
	require.InDelta(t, 0.7, byID["cloth"], 1e-9)
	// Pakistan's gift culture notes traditional crafts: clothing bonus plus
	// traditional-name bonus.
	require.InDelta(t, 1.0, byID["trad"], 1e-9)
}

func TestCulturalScoreJewelryBonus(t *testing.T) {
	store := newTestStore()

	products := []catalog.Product{
		{ID: "gold", Name: "Gold Bangle", Categories: []string{"accessories", "jewelry"}},
	}

	kept, _ := store.FilterProducts(products, "Dubai", "")
	require.Len(t, kept, 1)
	require.InDelta(t, 1.0, kept[0].CulturalScore, 1e-9)
}

func TestCulturalScoreBounded(t *testing.T) {
	store := newTestStore()

	products := []catalog.Product{
		{ID: "max", Name: "Traditional Jewelry Set", Categories: []string{"accessories", "jewelry", "clothing"}},
	}

	kept, _ := store.FilterProducts(products, "India", "")
	require.Len(t, kept, 1)
	require.LessOrEqual(t, kept[0].CulturalScore, 1.0)
	require.GreaterOrEqual(t, kept[0].CulturalScore, 0.0)
}

func TestFilterProductsPreservesCatalogOrder(t *testing.T) {
	store := newTestStore()

	products := []catalog.Product{
		{ID: "a", Name: "Scarf", Categories: []string{"accessories"}},
		{ID: "b", Name: "Mug", Categories: []string{"kitchen"}},
		{ID: "c", Name: "Shirt", Categories: []string{"clothing"}},
	}

	kept, _ := store.FilterProducts(products, "Japan", "")
	require.Len(t, kept, 3)
	require.Equal(t, "a", kept[0].Product.ID)
	require.Equal(t, "b", kept[1].Product.ID)
	require.Equal(t, "c", kept[2].Product.ID)
}

func TestFilterProductsEmptyCatalog(t *testing.T) {
	store := newTestStore()

	kept, taboos := store.FilterProducts(nil, "Pakistan", "")
	require.Empty(t, kept)
	require.NotEmpty(t, taboos)
}
