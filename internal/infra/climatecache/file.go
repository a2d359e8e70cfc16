package climatecache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nadira/tripstylist/internal/domain/climate"
)

type fileEntry struct {
	Record   *climate.Record `json:"record"`
	StoredAt time.Time       `json:"storedAt"`
}

// FileCache persists climate records as a single JSON file. Reads are served
// from memory; every write rewrites the file atomically via a temp file
// rename. A corrupt or missing file starts as an empty cache, never a
// startup failure.
type FileCache struct {
	path   string
	logger *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]fileEntry
}

// NewFileCache loads the cache at path, purging entries past the retention
// window as part of the load. A purge that removed anything is written back
// so stale entries do not outlive restarts in the persisted file.
func NewFileCache(path string, logger *slog.Logger) *FileCache {
	c := &FileCache{
		path:    path,
		logger:  logger.With("component", "climatecache.file"),
		now:     time.Now,
		entries: make(map[string]fileEntry),
	}
	c.load()
	if removed := c.purgeLocked(); removed > 0 {
		if err := c.persist(); err != nil {
			c.logger.Warn("could not persist load-time purge", "removed", removed, "error", err)
		}
	}
	return c
}

func (c *FileCache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("climate cache unreadable, starting empty", "path", c.path, "error", err)
		}
		return
	}
	var entries map[string]fileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		c.logger.Warn("climate cache corrupt, starting empty", "path", c.path, "error", err)
		return
	}
	c.entries = entries
}

func (c *FileCache) Get(_ context.Context, city, country string) (*climate.Record, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[climate.CacheKey(city, country)]
	if !ok {
		return nil, false, nil
	}
	if c.now().Sub(entry.StoredAt) >= climate.FreshTTL {
		return nil, false, nil
	}
	return entry.Record, true, nil
}

func (c *FileCache) Put(_ context.Context, city, country string, record *climate.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[climate.CacheKey(city, country)] = fileEntry{
		Record:   record,
		StoredAt: c.now(),
	}
	return c.persist()
}

func (c *FileCache) PurgeExpired(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.purgeLocked() == 0 {
		return nil
	}
	return c.persist()
}

// purgeLocked drops entries past the retention window and reports how many
// were removed. Callers must hold the write lock (or own the cache
// exclusively, as during construction).
func (c *FileCache) purgeLocked() int {
	removed := 0
	cutoff := c.now().Add(-climate.PurgeTTL)
	for key, entry := range c.entries {
		if entry.StoredAt.Before(cutoff) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *FileCache) persist() error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode climate cache: %w", err)
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create climate cache dir: %w", err)
		}
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write climate cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace climate cache: %w", err)
	}
	return nil
}
