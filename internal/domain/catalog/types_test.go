package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceDisplay(t *testing.T) {
	require.Equal(t, "USD 24.99", Price{CurrencyCode: "USD", Units: 24, Nanos: 990000000}.Display())
	require.Equal(t, "USD 18.00", Price{CurrencyCode: "USD", Units: 18}.Display())
	require.Equal(t, "price unavailable", Price{}.Display())
}

func TestHasCategoryIsExactAndCaseInsensitive(t *testing.T) {
	p := Product{Categories: []string{"Clothing", "summer"}}

	require.True(t, p.HasCategory("clothing"))
	require.True(t, p.HasCategory("SUMMER"))
	require.False(t, p.HasCategory("cloth"))
}

func TestMatchesTextSearchesAllFields(t *testing.T) {
	p := Product{
		Name:        "Merino Wool Sweater",
		Description: "Thick knit for cold climates",
		Categories:  []string{"winter"},
	}

	require.True(t, p.MatchesText("wool"))
	require.True(t, p.MatchesText("COLD"))
	require.True(t, p.MatchesText("winter"))
	require.False(t, p.MatchesText("summer"))
	require.False(t, p.MatchesText(""))
}

func TestFilterLocal(t *testing.T) {
	products := []Product{
		{ID: "a", Name: "Sun Hat", Categories: []string{"accessories", "summer"}},
		{ID: "b", Name: "Wool Sweater", Categories: []string{"clothing", "winter"}},
		{ID: "c", Name: "Summer Dress", Categories: []string{"clothing", "summer"}},
	}

	byCategory := FilterLocal(products, Query{Category: "clothing"})
	require.Len(t, byCategory, 2)

	bySearch := FilterLocal(products, Query{Search: "wool"})
	require.Len(t, bySearch, 1)
	require.Equal(t, "b", bySearch[0].ID)

	both := FilterLocal(products, Query{Category: "summer", Search: "dress"})
	require.Len(t, both, 1)
	require.Equal(t, "c", both[0].ID)

	none := FilterLocal(products, Query{})
	require.Len(t, none, 3)
}
