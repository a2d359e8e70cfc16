package climate

import "strings"

// Classification buckets a region's overall climate.
type Classification string

const (
	ClassTropical    Classification = "tropical"
	ClassDesert      Classification = "desert"
	ClassTemperate   Classification = "temperate"
	ClassContinental Classification = "continental"
	ClassUnknown     Classification = "unknown"
)

// MonthWeather holds one month's expected conditions for a city.
type MonthWeather struct {
	TempRange   string `json:"tempRange"` // "{min}-{max}°C"
	Description string `json:"description"`
	Clothing    string `json:"clothing"`
}

// Record is the per-city month-to-weather table used to tailor
// recommendations. The Months map may be partial: consumers must tolerate
// missing keys.
type Record struct {
	City           string                  `json:"city"`
	Region         string                  `json:"region"`
	Classification Classification          `json:"classification"`
	Months         map[string]MonthWeather `json:"months"`
	CurrentMonth   *MonthWeather           `json:"currentMonth,omitempty"`
	Source         string                  `json:"source,omitempty"`
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MonthName returns the lowercase name for a 1-12 month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthNumber is the inverse of MonthName; 0 when unknown.
func MonthNumber(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range monthNames {
		if candidate == name {
			return i + 1
		}
	}
	return 0
}

// SeasonForMonth maps a month number to the northern-hemisphere season name.
func SeasonForMonth(month int) string {
	switch month {
	case 12, 1, 2:
		return "winter"
	case 3, 4, 5:
		return "spring"
	case 6, 7, 8:
		return "summer"
	case 9, 10, 11:
		return "autumn"
	default:
		return ""
	}
}
