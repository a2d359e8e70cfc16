package climate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nadira/tripstylist/pkg/logger"
)

type stubCache struct {
	records map[string]*Record
	puts    []string
	getErr  error
}

func newStubCache() *stubCache {
	return &stubCache{records: make(map[string]*Record)}
}

func (c *stubCache) Get(_ context.Context, city, country string) (*Record, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	record, ok := c.records[CacheKey(city, country)]
	return record, ok, nil
}

func (c *stubCache) Put(_ context.Context, city, country string, record *Record) error {
	key := CacheKey(city, country)
	c.records[key] = record
	c.puts = append(c.puts, key)
	return nil
}

func (c *stubCache) PurgeExpired(context.Context) error { return nil }

type stubText struct {
	passage string
	err     error
	calls   int
}

func (s *stubText) Extract(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.passage, s.err
}

type stubWeather struct {
	tempC float64
	err   error
	calls int
}

func (s *stubWeather) CurrentTempC(_ context.Context, _ string) (float64, error) {
	s.calls++
	return s.tempC, s.err
}

func TestResolveCacheHitShortCircuits(t *testing.T) {
	cache := newStubCache()
	cache.records["tokyo_japan"] = SynthesizeRecord("tokyo", "Kanto", ClassTemperate, "static")
	text := &stubText{}
	weather := &stubWeather{}
	r := NewResolver(cache, text, weather, logger.New())

	record := r.Resolve(context.Background(), "Japan", "Tokyo", 0)

	require.NotNil(t, record)
	require.Equal(t, "tokyo", record.City)
	require.Zero(t, text.calls)
	require.Zero(t, weather.calls)
	require.Empty(t, cache.puts)
}

func TestResolveStaticTableAndWriteThrough(t *testing.T) {
	cache := newStubCache()
	r := NewResolver(cache, nil, nil, logger.New())

	record := r.Resolve(context.Background(), "Pakistan", "Karachi", 7)

	require.NotNil(t, record)
	require.Equal(t, ClassDesert, record.Classification)
	require.Equal(t, []string{"karachi_pakistan"}, cache.puts)
	require.NotNil(t, record.CurrentMonth)
	require.Equal(t, "30-45°C", record.CurrentMonth.TempRange)
}

func TestResolveNormalizesCountryAlias(t *testing.T) {
	r := NewResolver(newStubCache(), nil, nil, logger.New())

	record := r.Resolve(context.Background(), "UAE", "", 1)

	require.NotNil(t, record)
	require.Equal(t, "dubai", record.City)
	require.Equal(t, ClassDesert, record.Classification)
}

func TestResolveTextTierParsesMonthRanges(t *testing.T) {
	text := &stubText{passage: "The city has a humid climate. July averages 26 to 33°C while January sees 20-27°C."}
	r := NewResolver(newStubCache(), text, nil, logger.New())

	record := r.Resolve(context.Background(), "Nowhere", "Palmtown", 7)

	require.NotNil(t, record)
	require.Equal(t, "reference-text", record.Source)
	require.Equal(t, "26-33°C", record.Months["july"].TempRange)
	require.Equal(t, "20-27°C", record.Months["january"].TempRange)
	require.NotNil(t, record.CurrentMonth)
	require.Equal(t, "hot weather", record.CurrentMonth.Description)
}

func TestResolveTextTierClassificationKeyword(t *testing.T) {
	text := &stubText{passage: "Palmtown lies in a tropical lowland belt with heavy monsoon rains."}
	r := NewResolver(newStubCache(), text, nil, logger.New())

	record := r.Resolve(context.Background(), "Nowhere", "Palmtown", 0)

	require.NotNil(t, record)
	require.Equal(t, ClassTropical, record.Classification)
	require.Len(t, record.Months, 12)
}

func TestResolveSynthesizesFromCurrentWeather(t *testing.T) {
	text := &stubText{err: errors.New("upstream 503")}
	weather := &stubWeather{tempC: 5}
	r := NewResolver(newStubCache(), text, weather, logger.New())

	record := r.Resolve(context.Background(), "Nowhere", "Highvale", 7)

	require.NotNil(t, record)
	require.Equal(t, "current-weather", record.Source)
	// Summer offset +5 puts July's midpoint at 10.
	require.Equal(t, "5-15°C", record.Months["july"].TempRange)
	require.Equal(t, "mild weather", record.Months["july"].Description)
	// Winter offset -10.
	require.Equal(t, "-10-0°C", record.Months["january"].TempRange)
}

func TestResolveExhaustedReturnsNil(t *testing.T) {
	text := &stubText{err: errors.New("timeout")}
	weather := &stubWeather{err: errors.New("timeout")}
	r := NewResolver(newStubCache(), text, weather, logger.New())

	require.Nil(t, r.Resolve(context.Background(), "Nowhere", "Ghosttown", 3))
}

func TestResolveCacheErrorFallsThrough(t *testing.T) {
	cache := newStubCache()
	cache.getErr = errors.New("disk gone")
	r := NewResolver(cache, nil, nil, logger.New())

	record := r.Resolve(context.Background(), "Japan", "Kyoto", 0)

	require.NotNil(t, record)
	require.Equal(t, ClassTemperate, record.Classification)
}
