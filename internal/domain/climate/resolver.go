package climate

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nadira/tripstylist/internal/domain/culture"
)

// TextSource fetches a free-text reference passage for a query string, e.g.
// an encyclopedia extract about a city's climate. Optional.
type TextSource interface {
	Extract(ctx context.Context, query string) (string, error)
}

// WeatherSource reports the current temperature for a city in Celsius. Optional.
type WeatherSource interface {
	CurrentTempC(ctx context.Context, city string) (float64, error)
}

// Seasonal offsets applied to a single current-temperature reading when
// synthesizing a year table (tier 4). Northern-hemisphere assumption.
var seasonOffsets = map[string]float64{
	"winter": -10,
	"spring": -5,
	"summer": 5,
	"autumn": 0,
}

// Resolver turns a (country, city) pair into a Record by walking an ordered
// waterfall of sources: cache, static table, reference-text mining, live
// weather reading. Every tier may fail; failures are logged and the next
// tier is tried. Resolve never returns an error: exhaustion yields nil and
// callers degrade to unfiltered behavior.
type Resolver struct {
	cache   Cache
	text    TextSource
	weather WeatherSource
	logger  *slog.Logger
	now     func() time.Time
}

// NewResolver wires the climate waterfall. text and weather may be nil, which
// disables their tiers.
func NewResolver(cache Cache, text TextSource, weather WeatherSource, logger *slog.Logger) *Resolver {
	return &Resolver{
		cache:   cache,
		text:    text,
		weather: weather,
		logger:  logger.With("component", "climate.resolver"),
		now:     time.Now,
	}
}

// Resolve returns the climate record for the destination, or nil when every
// source failed. month (1-12, 0 for unset) selects the CurrentMonth
// annotation on the returned record.
func (r *Resolver) Resolve(ctx context.Context, country, city string, month int) *Record {
	countryKey := culture.NormalizeCountry(country)
	cityKey := strings.ToLower(strings.TrimSpace(city))
	if cityKey == "" {
		cityKey = countryKey
	}

	if record, ok := r.fromCache(ctx, cityKey, countryKey); ok {
		return withCurrentMonth(record, month)
	}

	if record := staticLookup(countryKey, cityKey); record != nil {
		r.store(ctx, cityKey, countryKey, record)
		return withCurrentMonth(record, month)
	}

	if record := r.fromText(ctx, cityKey); record != nil {
		r.store(ctx, cityKey, countryKey, record)
		return withCurrentMonth(record, month)
	}

	if record := r.fromCurrentWeather(ctx, cityKey); record != nil {
		r.store(ctx, cityKey, countryKey, record)
		return withCurrentMonth(record, month)
	}

	r.logger.Info("climate resolution exhausted all sources", "city", cityKey, "country", countryKey)
	return nil
}

func (r *Resolver) fromCache(ctx context.Context, city, country string) (*Record, bool) {
	if r.cache == nil {
		return nil, false
	}
	record, ok, err := r.cache.Get(ctx, city, country)
	if err != nil {
		r.logger.Warn("climate cache read failed", "city", city, "error", err)
		return nil, false
	}
	return record, ok && record != nil
}

func (r *Resolver) store(ctx context.Context, city, country string, record *Record) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Put(ctx, city, country, record); err != nil {
		r.logger.Warn("climate cache write failed", "city", city, "error", err)
	}
}

func (r *Resolver) fromText(ctx context.Context, city string) *Record {
	if r.text == nil {
		return nil
	}
	passage, err := r.text.Extract(ctx, "climate of "+city)
	if err != nil {
		r.logger.Warn("reference text lookup failed", "city", city, "error", err)
		return nil
	}
	record := parseClimatePassage(passage, city)
	if record == nil {
		r.logger.Debug("reference text held no usable climate data", "city", city)
	}
	return record
}

func (r *Resolver) fromCurrentWeather(ctx context.Context, city string) *Record {
	if r.weather == nil {
		return nil
	}
	current, err := r.weather.CurrentTempC(ctx, city)
	if err != nil {
		r.logger.Warn("current weather lookup failed", "city", city, "error", err)
		return nil
	}
	return synthesizeFromCurrent(city, current)
}

// synthesizeFromCurrent builds a crude year table from one reading by
// applying the fixed seasonal offsets.
func synthesizeFromCurrent(city string, currentTempC float64) *Record {
	months := make(map[string]MonthWeather, 12)
	for m := 1; m <= 12; m++ {
		mid := currentTempC + seasonOffsets[SeasonForMonth(m)]
		months[MonthName(m)] = MonthWeather{
			TempRange:   FormatTempRange(mid-5, mid+5),
			Description: Describe(mid),
			Clothing:    ClothingAdvice(mid),
		}
	}
	return &Record{
		City:           city,
		Classification: ClassUnknown,
		Months:         months,
		Source:         "current-weather",
	}
}

var passageMonthRe = regexp.MustCompile(`(january|february|march|april|may|june|july|august|september|october|november|december)[^.\n]{0,60}?(-?\d+(?:\.\d+)?)\s*(?:to|–|-)\s*(-?\d+(?:\.\d+)?)\s*°\s*[Cc]`)

// parseClimatePassage mines a free-text passage for month-keyed temperature
// ranges, or failing that a climate classification keyword.
func parseClimatePassage(passage, city string) *Record {
	lower := strings.ToLower(passage)

	months := make(map[string]MonthWeather)
	for _, match := range passageMonthRe.FindAllStringSubmatch(lower, -1) {
		min, errMin := strconv.ParseFloat(match[2], 64)
		max, errMax := strconv.ParseFloat(match[3], 64)
		if errMin != nil || errMax != nil || min > max {
			continue
		}
		avg := (min + max) / 2
		months[match[1]] = MonthWeather{
			TempRange:   FormatTempRange(min, max),
			Description: Describe(avg),
			Clothing:    ClothingAdvice(avg),
		}
	}
	if len(months) > 0 {
		return &Record{
			City:           city,
			Classification: classifyPassage(lower),
			Months:         months,
			Source:         "reference-text",
		}
	}

	if class := classifyPassage(lower); class != ClassUnknown {
		return SynthesizeRecord(city, "", class, "reference-text")
	}
	return nil
}

func classifyPassage(lower string) Classification {
	switch {
	case strings.Contains(lower, "tropical"):
		return ClassTropical
	case strings.Contains(lower, "desert") || strings.Contains(lower, "arid"):
		return ClassDesert
	case strings.Contains(lower, "continental"):
		return ClassContinental
	case strings.Contains(lower, "temperate") || strings.Contains(lower, "mediterranean") || strings.Contains(lower, "oceanic"):
		return ClassTemperate
	default:
		return ClassUnknown
	}
}

// withCurrentMonth returns a shallow copy of the record annotated with the
// requested month's conditions, when known.
func withCurrentMonth(record *Record, month int) *Record {
	if record == nil || month == 0 {
		return record
	}
	out := *record
	if weather, ok := record.Months[MonthName(month)]; ok {
		out.CurrentMonth = &weather
	}
	return &out
}
