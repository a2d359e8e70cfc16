package climatecache

import (
	"context"
	"sync"
	"time"

	"github.com/nadira/tripstylist/internal/domain/climate"
)

type memoryEntry struct {
	record   *climate.Record
	storedAt time.Time
}

// MemoryCache is the process-local cache used in tests and when no file
// path or Valkey address is configured.
type MemoryCache struct {
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, city, country string) (*climate.Record, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[climate.CacheKey(city, country)]
	if !ok || c.now().Sub(entry.storedAt) >= climate.FreshTTL {
		return nil, false, nil
	}
	return entry.record, true, nil
}

func (c *MemoryCache) Put(_ context.Context, city, country string, record *climate.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[climate.CacheKey(city, country)] = memoryEntry{
		record:   record,
		storedAt: c.now(),
	}
	return nil
}

func (c *MemoryCache) PurgeExpired(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-climate.PurgeTTL)
	for key, entry := range c.entries {
		if entry.storedAt.Before(cutoff) {
			delete(c.entries, key)
		}
	}
	return nil
}
