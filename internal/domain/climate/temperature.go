package climate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultAvgTempC is assumed whenever a temperature range cannot be parsed.
const DefaultAvgTempC = 20.0

var tempRangeRe = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*(?:to|–|-)\s*(-?\d+(?:\.\d+)?)\s*°?\s*[Cc]?`)

// FormatTempRange renders the canonical "{min}-{max}°C" range string.
func FormatTempRange(min, max float64) string {
	return fmt.Sprintf("%.0f-%.0f°C", min, max)
}

// ParseTempRange extracts the numeric bounds from a "{min}-{max}°C" string.
func ParseTempRange(s string) (min, max float64, ok bool) {
	match := tempRangeRe.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return 0, 0, false
	}
	min, errMin := strconv.ParseFloat(match[1], 64)
	max, errMax := strconv.ParseFloat(match[2], 64)
	if errMin != nil || errMax != nil {
		return 0, 0, false
	}
	return min, max, true
}

// AvgTemp returns the midpoint of a range string, or the 20°C default when
// the text does not parse.
func AvgTemp(rangeText string) float64 {
	min, max, ok := ParseTempRange(rangeText)
	if !ok {
		return DefaultAvgTempC
	}
	return (min + max) / 2
}

// TempLabel walks the threshold ladder over an average temperature:
// inclusive lower bound, exclusive upper.
func TempLabel(avgC float64) string {
	switch {
	case avgC < 0:
		return "very cold"
	case avgC < 10:
		return "cold"
	case avgC < 15:
		return "cool"
	case avgC < 20:
		return "mild"
	case avgC < 25:
		return "warm"
	case avgC < 30:
		return "hot"
	default:
		return "very hot"
	}
}

// Describe renders the human weather description. The cool band is folded
// into mild here: packing advice does not distinguish the two.
func Describe(avgC float64) string {
	switch {
	case avgC < 0:
		return "very cold weather"
	case avgC < 10:
		return "cold weather"
	case avgC < 20:
		return "mild weather"
	case avgC < 25:
		return "warm weather"
	case avgC < 30:
		return "hot weather"
	default:
		return "very hot weather"
	}
}

// ClothingAdvice is a deterministic function of the same ladder as TempLabel.
func ClothingAdvice(avgC float64) string {
	switch TempLabel(avgC) {
	case "very cold":
		return "heavy coat, thermal layers, gloves and hat"
	case "cold":
		return "warm layers, insulated jacket, scarf"
	case "cool":
		return "light jacket, long sleeves"
	case "mild":
		return "light layers, comfortable casual wear"
	case "warm":
		return "breathable fabrics, light clothing"
	case "hot":
		return "lightweight cotton, sun hat, sunglasses"
	default:
		return "minimal light clothing, strong sun protection"
	}
}
