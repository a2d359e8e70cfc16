package climate

import (
	"context"
	"strings"
	"time"
)

// Cache freshness windows. An entry older than FreshTTL is skipped at read
// time; one older than PurgeTTL is removed from the backing store entirely.
const (
	FreshTTL = 7 * 24 * time.Hour
	PurgeTTL = 30 * 24 * time.Hour
)

// Cache persists resolved climate records between requests and process runs.
// The Resolver is the only writer; other components must not touch it.
type Cache interface {
	// Get returns the cached record for a city/country pair. The boolean is
	// false when the entry is absent or stale.
	Get(ctx context.Context, city, country string) (*Record, bool, error)
	// Put upserts the record under the pair's key with the current timestamp.
	Put(ctx context.Context, city, country string, record *Record) error
	// PurgeExpired drops entries older than PurgeTTL.
	PurgeExpired(ctx context.Context) error
}

// CacheKey builds the canonical lowercase "{city}_{country}" key.
func CacheKey(city, country string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "_" + strings.ToLower(strings.TrimSpace(country))
}
