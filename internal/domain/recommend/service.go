package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/nadira/tripstylist/internal/domain/catalog"
	"github.com/nadira/tripstylist/internal/domain/climate"
	"github.com/nadira/tripstylist/internal/domain/culture"
	"github.com/nadira/tripstylist/internal/domain/intent"
	apperrors "github.com/nadira/tripstylist/pkg/errors"
)

const (
	// ErrCatalogUnavailable marks failures to reach any product source.
	ErrCatalogUnavailable = "CATALOG_UNAVAILABLE"

	stagingCap = 8
	finalCap   = 6

	festivalBoost = 0.1
)

// ClimateResolver yields the climate record for a destination, or nil when
// nothing could be resolved.
type ClimateResolver interface {
	Resolve(ctx context.Context, country, city string, month int) *climate.Record
}

// Service runs the full recommendation pipeline for a parsed travel intent.
type Service interface {
	Recommend(ctx context.Context, travel intent.TravelIntent) (*Result, error)
}

type service struct {
	catalog catalog.Provider
	culture *culture.Store
	climate ClimateResolver
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(provider catalog.Provider, store *culture.Store, resolver ClimateResolver, logger *slog.Logger) Service {
	return &service{
		catalog: provider,
		culture: store,
		climate: resolver,
		logger:  logger.With("component", "recommend.service"),
		now:     time.Now,
	}
}

// Recommend resolves climate, fetches the catalog, applies the cultural and
// climate filters and ranks the survivors. Cultural exclusion is hard;
// everything after it degrades rather than fails.
func (s *service) Recommend(ctx context.Context, travel intent.TravelIntent) (*Result, error) {
	month := s.effectiveMonth(travel)
	destination := travel.Destination
	if destination == "" {
		destination = travel.Country
	}
	// Culture and climate lookups key on a bare country or city name, never
	// the composite "City, Country" display string.
	region := coalesce(travel.Country, travel.City, destination)

	record := s.climate.Resolve(ctx, region, travel.City, month)

	products, err := s.catalog.Products(ctx, catalog.Query{Category: string(travel.Category)})
	if err != nil {
		return nil, apperrors.Wrap(ErrCatalogUnavailable, "fetch products", err)
	}

	scored, taboos := s.culture.FilterProducts(products, region, travel.Activity)

	avgTemp, description, clothing := monthConditions(record)
	filtered := ClimateFilter(scored, avgTemp, description, clothing)

	if travel.CulturalEvent != "" {
		filtered = s.applyFestivalBoost(filtered, travel.CulturalEvent, region)
	}

	filtered = dedupeByID(filtered)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CulturalScore > filtered[j].CulturalScore
	})
	if len(filtered) > stagingCap {
		filtered = filtered[:stagingCap]
	}

	relevance := seasonalRelevance(description, month, destination)
	ranked := make([]ScoredProduct, 0, len(filtered))
	for _, item := range filtered {
		ranked = append(ranked, ScoredProduct{
			Product:           item.Product,
			CulturalScore:     item.CulturalScore,
			SeasonalRelevance: relevance,
		})
		if len(ranked) == finalCap {
			break
		}
	}

	s.logger.Info("recommendation pipeline complete",
		"destination", destination,
		"fetched", len(products),
		"ranked", len(ranked),
		"taboos", len(taboos))

	return &Result{Products: ranked, Climate: record, TaboosApplied: taboos}, nil
}

// effectiveMonth picks the month to plan around: explicit month, then a
// representative month of the stated season, then the current month.
func (s *service) effectiveMonth(travel intent.TravelIntent) int {
	if travel.Month >= 1 && travel.Month <= 12 {
		return travel.Month
	}
	switch travel.Season {
	case intent.SeasonWinter:
		return 1
	case intent.SeasonSpring:
		return 4
	case intent.SeasonSummer:
		return 7
	case intent.SeasonAutumn:
		return 10
	}
	return int(s.now().Month())
}

// monthConditions reads the planning month's conditions off the record,
// defaulting to a mild 20°C when climate resolution came up empty.
func monthConditions(record *climate.Record) (avg float64, description, clothing string) {
	if record == nil || record.CurrentMonth == nil {
		avg = climate.DefaultAvgTempC
		return avg, climate.Describe(avg), climate.ClothingAdvice(avg)
	}
	avg = climate.AvgTemp(record.CurrentMonth.TempRange)
	description = record.CurrentMonth.Description
	if description == "" {
		description = climate.Describe(avg)
	}
	clothing = record.CurrentMonth.Clothing
	if clothing == "" {
		clothing = climate.ClothingAdvice(avg)
	}
	return avg, description, clothing
}

func (s *service) applyFestivalBoost(items []culture.Scored, event, destination string) []culture.Scored {
	phrases := s.culture.FestivalDressCode(event, destination)
	if len(phrases) == 0 {
		return items
	}
	for i, item := range items {
		for _, phrase := range phrases {
			if item.Product.MatchesText(phrase) {
				items[i].CulturalScore = clamp(item.CulturalScore + festivalBoost)
				break
			}
		}
	}
	return items
}

func dedupeByID(items []culture.Scored) []culture.Scored {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, dup := seen[item.Product.ID]; dup {
			continue
		}
		seen[item.Product.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

func seasonalRelevance(description string, month int, destination string) string {
	monthName := climate.MonthName(month)
	if monthName == "" {
		return fmt.Sprintf("suited to %s in %s", description, destination)
	}
	return fmt.Sprintf("suited to the %s expected in %s", description, capitalize(monthName))
}

func clamp(score float64) float64 {
	if score > 1 {
		return 1
	}
	return score
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
