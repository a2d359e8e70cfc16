package culture

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNormalizeCountryAliases(t *testing.T) {
	for _, input := range []string{"Istanbul", "istanbul", "ISTANBUL", "Turkey", "turkey"} {
		require.Equal(t, "turkey", NormalizeCountry(input), "input %q", input)
	}
	require.Equal(t, "pakistan", NormalizeCountry("Karachi"))
	require.Equal(t, "pakistan", NormalizeCountry("Lahore"))
	require.Equal(t, "dubai", NormalizeCountry("UAE"))
	require.Equal(t, "dubai", NormalizeCountry("Emirates"))
	require.Equal(t, "japan", NormalizeCountry("Kyoto"))
	require.Equal(t, "india", NormalizeCountry("New Delhi"))
}

func TestNormalizeCountryIdempotent(t *testing.T) {
	for _, input := range []string{"Istanbul", "Dubai", "Karachi", "Reykjavik"} {
		once := NormalizeCountry(input)
		require.Equal(t, once, NormalizeCountry(once))
	}
}

func TestTaboosReligiousActivityIsFixedList(t *testing.T) {
	store := newTestStore()

	want := []string{"revealing clothing", "inappropriate religious wear", "uncovered shoulders"}
	require.Equal(t, want, store.Taboos("Japan", "religious"))
	require.Equal(t, want, store.Taboos("Pakistan", "visiting a mosque"))
	require.Equal(t, want, store.Taboos("India", "temple tour"))
}

func TestTaboosBeachActivity(t *testing.T) {
	store := newTestStore()

	taboos := store.Taboos("Dubai", "beach holiday")
	require.Contains(t, taboos, "topless sunbathing")
	require.Contains(t, taboos, "transparent beachwear")
	for _, taboo := range taboos[:len(taboos)-2] {
		require.True(t, containsAny(taboo, "swim", "bikini", "revealing"), "unexpected beach taboo %q", taboo)
	}
}

func TestTaboosDefaultTopThree(t *testing.T) {
	store := newTestStore()

	taboos := store.Taboos("Pakistan", "")
	require.Equal(t, []string{"revealing", "inappropriate-conservative", "alcohol"}, taboos)
}

func TestTaboosUnknownCountry(t *testing.T) {
	store := newTestStore()
	require.Empty(t, store.Taboos("Reykjavik", ""))
}

func TestFestivalDressCode(t *testing.T) {
	store := newTestStore()

	require.Equal(t,
		[]string{"modest formal wear", "long sleeves", "elegant headscarf"},
		store.FestivalDressCode("Eid al-Fitr", "Dubai"))
	require.Equal(t,
		[]string{"modest formal wear", "long sleeves", "elegant headscarf"},
		store.FestivalDressCode("ramadan", "Turkey"))
	require.Equal(t,
		[]string{"bright traditional outfit", "embroidered kurta", "festive jewelry"},
		store.FestivalDressCode("Diwali", "India"))
	require.Equal(t,
		[]string{"festive formal wear", "smart evening outfit", "warm layers"},
		store.FestivalDressCode("Christmas", "Japan"))
}

func TestFestivalDressCodeFallsBackToPriorities(t *testing.T) {
	store := newTestStore()

	code := store.FestivalDressCode("Golden Week", "Japan")
	require.Equal(t, store.Rules("japan").Priorities[:3], code)
}

func TestFestivalDressCodeGenericFallback(t *testing.T) {
	store := newTestStore()

	code := store.FestivalDressCode("Midsummer", "Reykjavik")
	require.Equal(t, genericDressCode, code)
}

func TestMandatoryItems(t *testing.T) {
	store := newTestStore()

	require.NotEmpty(t, store.Mandatory("Pakistan"))
	require.Empty(t, store.Mandatory("Reykjavik"))
}
