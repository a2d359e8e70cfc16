package unit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nadira/tripstylist/internal/domain/climate"
	"github.com/nadira/tripstylist/internal/domain/culture"
	"github.com/nadira/tripstylist/internal/domain/intent"
	"github.com/nadira/tripstylist/internal/domain/narrative"
	"github.com/nadira/tripstylist/internal/domain/recommend"
	"github.com/nadira/tripstylist/internal/infra/catalogsrc"
	"github.com/nadira/tripstylist/internal/infra/climatecache"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Exercises the real pipeline end to end: seeded catalog, static climate
// table, cultural filter, climate filter and template narrative.
func TestPipelineKarachiInJune(t *testing.T) {
	log := newTestLogger()
	resolver := climate.NewResolver(climatecache.NewMemoryCache(), nil, nil, log)
	svc := recommend.NewService(catalogsrc.NewMemoryProvider(nil), culture.NewStore(log), resolver, log)
	parser := intent.NewParser(log)

	travel := parser.Parse("What should I pack for Karachi in June?")
	require.Equal(t, "Karachi", travel.City)
	require.Equal(t, 6, travel.Month)

	result, err := svc.Recommend(context.Background(), travel)
	require.NoError(t, err)

	ids := make([]string, 0, len(result.Products))
	for _, item := range result.Products {
		ids = append(ids, item.Product.ID)
		require.GreaterOrEqual(t, item.CulturalScore, 0.0)
		require.LessOrEqual(t, item.CulturalScore, 1.0)
	}
	require.NotContains(t, ids, "string-bikini")
	require.NotContains(t, ids, "wine-set")
	require.Contains(t, ids, "cotton-shirt")
	require.LessOrEqual(t, len(ids), 6)

	require.NotNil(t, result.Climate)
	require.NotNil(t, result.Climate.CurrentMonth)
	require.Equal(t, "very hot weather", result.Climate.CurrentMonth.Description)
	require.NotEmpty(t, result.TaboosApplied)

	composer := narrative.NewComposer(narrative.Config{}, nil, log)
	reply := composer.Compose(context.Background(), "What should I pack for Karachi in June?", travel, result)
	require.Contains(t, reply.Message, "Karachi")
	require.Contains(t, reply.Message, "very hot weather")
}

// A second call for the same destination is served from the cache the
// resolver wrote through on the first call.
func TestPipelineWarmsClimateCache(t *testing.T) {
	log := newTestLogger()
	cache := climatecache.NewMemoryCache()
	resolver := climate.NewResolver(cache, nil, nil, log)

	first := resolver.Resolve(context.Background(), "Pakistan", "Karachi", 6)
	require.NotNil(t, first)

	cached, ok, err := cache.Get(context.Background(), "karachi", "pakistan")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, climate.ClassDesert, cached.Classification)
}
