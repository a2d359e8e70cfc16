package climatecache

import (
	"context"
	"encoding/json"

	"github.com/valkey-io/valkey-go"

	"github.com/nadira/tripstylist/internal/domain/climate"
)

// ValkeyCache shares climate records across instances through a
// Valkey-compatible database. Freshness rides on key TTLs, so PurgeExpired
// has nothing to do.
type ValkeyCache struct {
	client valkey.Client
	prefix string
}

// NewValkeyCache constructs the cache.
func NewValkeyCache(client valkey.Client, prefix string) *ValkeyCache {
	if prefix == "" {
		prefix = "climate"
	}
	return &ValkeyCache{client: client, prefix: prefix}
}

func (c *ValkeyCache) Get(ctx context.Context, city, country string) (*climate.Record, bool, error) {
	cmd := c.client.B().Get().Key(c.key(city, country)).Build()
	payload, err := c.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var record climate.Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, false, err
	}
	return &record, true, nil
}

func (c *ValkeyCache) Put(ctx context.Context, city, country string, record *climate.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	cmd := c.client.B().Set().
		Key(c.key(city, country)).
		Value(string(payload)).
		Ex(climate.FreshTTL).
		Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) PurgeExpired(context.Context) error {
	return nil
}

func (c *ValkeyCache) key(city, country string) string {
	return c.prefix + ":" + climate.CacheKey(city, country)
}
