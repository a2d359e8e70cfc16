package climate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTempRange(t *testing.T) {
	cases := []struct {
		in       string
		min, max float64
		ok       bool
	}{
		{"18-28°C", 18, 28, true},
		{"-10-0°C", -10, 0, true},
		{"12 to 24 C", 12, 24, true},
		{"22.5-35°c", 22.5, 35, true},
		{"pleasant all year", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		min, max, ok := ParseTempRange(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			require.Equal(t, tc.min, min, tc.in)
			require.Equal(t, tc.max, max, tc.in)
		}
	}
}

func TestAvgTempDefaultsOnGarbage(t *testing.T) {
	require.Equal(t, DefaultAvgTempC, AvgTemp("unknown"))
	require.Equal(t, 23.0, AvgTemp("18-28°C"))
}

func TestTempLabelLadder(t *testing.T) {
	cases := []struct {
		avg   float64
		label string
	}{
		{-5, "very cold"},
		{0, "cold"},
		{9.9, "cold"},
		{10, "cool"},
		{15, "mild"},
		{20, "warm"},
		{25, "hot"},
		{30, "very hot"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.label, TempLabel(tc.avg), "%v", tc.avg)
	}
}

func TestDescribeFoldsCoolIntoMild(t *testing.T) {
	require.Equal(t, "mild weather", Describe(10))
	require.Equal(t, "mild weather", Describe(17))
	require.Equal(t, "cold weather", Describe(5))
	require.Equal(t, "very hot weather", Describe(37.5))
}

func TestFormatTempRangeRoundTrips(t *testing.T) {
	min, max, ok := ParseTempRange(FormatTempRange(-10, 0))
	require.True(t, ok)
	require.Equal(t, -10.0, min)
	require.Equal(t, 0.0, max)
}
