package intent

import (
	"log/slog"
	"strings"
)

// Parser extracts a TravelIntent from free text with deterministic keyword
// rules. It backs the chat endpoint whenever the LLM intent path is absent
// or fails, so it must never error: unknown queries yield an intent with
// unspecified fields.
type Parser struct {
	logger *slog.Logger
}

// NewParser constructs the keyword intent parser.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger.With("component", "intent.parser")}
}

type location struct {
	city    string
	country string
}

var knownCities = map[string]location{
	"karachi":   {"Karachi", "Pakistan"},
	"lahore":    {"Lahore", "Pakistan"},
	"islamabad": {"Islamabad", "Pakistan"},
	"skardu":    {"Skardu", "Pakistan"},
	"istanbul":  {"Istanbul", "Turkey"},
	"ankara":    {"Ankara", "Turkey"},
	"tokyo":     {"Tokyo", "Japan"},
	"kyoto":     {"Kyoto", "Japan"},
	"dubai":     {"Dubai", "UAE"},
	"mumbai":    {"Mumbai", "India"},
	"delhi":     {"Delhi", "India"},
	"amsterdam": {"Amsterdam", "Netherlands"},
	"rotterdam": {"Rotterdam", "Netherlands"},
}

var knownCountries = []string{
	"pakistan", "turkey", "japan", "netherlands", "india", "uae", "china", "korea",
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Parse derives a structured TravelIntent from the raw query text.
func (p *Parser) Parse(query string) TravelIntent {
	lower := strings.ToLower(query)

	out := TravelIntent{
		Season:   SeasonUnspecified,
		Category: CategoryClothing,
	}

	for key, loc := range knownCities {
		if strings.Contains(lower, key) {
			out.City = loc.city
			out.Country = loc.country
			out.Destination = loc.city + ", " + loc.country
			break
		}
	}
	if out.Country == "" {
		for _, c := range knownCountries {
			if strings.Contains(lower, c) {
				out.Country = title(c)
				out.Destination = out.Country
				break
			}
		}
	}

	for i, name := range monthNames {
		if strings.Contains(lower, name) {
			out.Month = i + 1
			out.Season = SeasonForMonth(out.Month)
			break
		}
	}
	if out.Season == SeasonUnspecified {
		for _, s := range []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonAutumn} {
			if strings.Contains(lower, string(s)) {
				out.Season = s
				break
			}
		}
	}

	out.Category = detectCategory(lower)
	out.CulturalEvent = detectEvent(lower)
	out.Activity = detectActivity(lower)

	p.logger.Debug("parsed intent",
		"destination", out.Destination, "category", out.Category, "season", out.Season)
	return out
}

func detectCategory(lower string) Category {
	switch {
	case containsAny(lower, "gift", "present", "souvenir"):
		return CategoryGifts
	case containsAny(lower, "accessor", "watch", "jewelry", "jewellery"):
		return CategoryAccessories
	case containsAny(lower, "electronics", "gadget", "phone", "charger", "adapter"):
		return CategoryElectronics
	case containsAny(lower, "beauty", "sunscreen", "skincare", "cosmetic"):
		return CategoryBeauty
	case containsAny(lower, "home decor", "decor", "lantern", "rug"):
		return CategoryHome
	default:
		return CategoryClothing
	}
}

func detectEvent(lower string) string {
	for _, event := range []string{"eid", "ramadan", "diwali", "holi", "christmas", "wedding"} {
		if strings.Contains(lower, event) {
			return event
		}
	}
	return ""
}

func detectActivity(lower string) string {
	switch {
	case containsAny(lower, "beach", "swim"):
		return "beach"
	case containsAny(lower, "religious", "mosque", "temple", "shrine"):
		return "religious"
	case containsAny(lower, "business", "meeting", "conference"):
		return "business"
	case containsAny(lower, "hiking", "trek", "mountain"):
		return "hiking"
	default:
		return ""
	}
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func title(s string) string {
	if s == "uae" {
		return "UAE"
	}
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
