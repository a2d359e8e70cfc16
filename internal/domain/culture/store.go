package culture

import (
	"log/slog"
	"strings"
)

// Taboo phrase lists returned for activity-specific lookups. The religious
// set is fixed regardless of destination.
var (
	religiousTaboos = []string{
		"revealing clothing",
		"inappropriate religious wear",
		"uncovered shoulders",
	}
	genericBeachTaboos = []string{
		"topless sunbathing",
		"transparent beachwear",
	}
	genericDressCode = []string{
		"respectful attire",
		"smart casual outfit",
		"comfortable walking shoes",
	}
)

const generalTabooLimit = 3

// Store serves static per-country cultural rules: taboo phrases, mandatory
// items, priorities, and festival dress codes.
type Store struct {
	rules  map[string]Rules
	logger *slog.Logger
}

// NewStore loads the curated cultural rule set.
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		rules:  countryRules(),
		logger: logger.With("component", "culture.store"),
	}
}

// Aliases mapping cities and alternate names onto canonical region keys.
var countryAliases = map[string]string{
	"istanbul":  "turkey",
	"ankara":    "turkey",
	"uae":       "dubai",
	"emirates":  "dubai",
	"tokyo":     "japan",
	"kyoto":     "japan",
	"karachi":   "pakistan",
	"lahore":    "pakistan",
	"islamabad": "pakistan",
	"mumbai":    "india",
	"delhi":     "india",
	"new delhi": "india",
}

// NormalizeCountry resolves a destination string to its canonical lowercase
// region key. Idempotent: feeding the output back returns the same key.
func NormalizeCountry(destination string) string {
	key := strings.ToLower(strings.TrimSpace(destination))
	if canonical, ok := countryAliases[key]; ok {
		return canonical
	}
	return key
}

// Rules returns the rule set for a destination, falling back to a generic
// set when no curated data exists.
func (s *Store) Rules(destination string) Rules {
	key := NormalizeCountry(destination)
	if rules, ok := s.rules[key]; ok {
		return rules
	}
	s.logger.Debug("no curated cultural data, using generic rules", "destination", destination)
	return genericRules(key)
}

// Taboos returns the taboo phrases to enforce for a destination, narrowed by
// the traveler's activity when one is known.
func (s *Store) Taboos(destination, activity string) []string {
	rules := s.Rules(destination)
	activity = strings.ToLower(activity)

	switch {
	case containsAny(activity, "beach", "swim"):
		out := swimwearTaboos(rules.Taboos)
		return append(out, genericBeachTaboos...)
	case containsAny(activity, "religious", "mosque", "temple"):
		out := make([]string, len(religiousTaboos))
		copy(out, religiousTaboos)
		return out
	default:
		limit := generalTabooLimit
		if len(rules.Taboos) < limit {
			limit = len(rules.Taboos)
		}
		out := make([]string, limit)
		copy(out, rules.Taboos[:limit])
		return out
	}
}

// Mandatory lists items travelers should carry for the destination.
func (s *Store) Mandatory(destination string) []string {
	return s.Rules(destination).Mandatory
}

// FestivalDressCode keyword-matches the festival name to a dress code list.
func (s *Store) FestivalDressCode(festival, destination string) []string {
	name := strings.ToLower(festival)
	switch {
	case containsAny(name, "eid", "ramadan"):
		return []string{"modest formal wear", "long sleeves", "elegant headscarf"}
	case containsAny(name, "diwali", "holi"):
		return []string{"bright traditional outfit", "embroidered kurta", "festive jewelry"}
	case strings.Contains(name, "christmas"):
		return []string{"festive formal wear", "smart evening outfit", "warm layers"}
	}

	priorities := s.Rules(destination).Priorities
	if len(priorities) == 0 {
		return genericDressCode
	}
	if len(priorities) > 3 {
		priorities = priorities[:3]
	}
	out := make([]string, len(priorities))
	copy(out, priorities)
	return out
}

func swimwearTaboos(taboos []string) []string {
	out := make([]string, 0, len(taboos))
	for _, taboo := range taboos {
		if containsAny(strings.ToLower(taboo), "swim", "bikini", "revealing") {
			out = append(out, taboo)
		}
	}
	return out
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
