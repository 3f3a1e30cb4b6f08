package character

import (
	"os"
	"time"

	"github.com/keeper-tools/keeper/pkg/lru"
	"github.com/keeper-tools/keeper/pkg/models"
)

// DefaultCacheSize bounds how many loaded sheets are kept in memory.
const DefaultCacheSize = 15

type cachedSheet struct {
	character *models.Character
	modTime   time.Time
}

// Cache keeps recently used character sheets in memory, keyed by file path.
// Entries are revalidated against the file's modification time on every hit,
// so an edited sheet is reloaded instead of served stale.
type Cache struct {
	entries *lru.Cache[string, cachedSheet]
}

// NewCache creates a Cache holding at most capacity sheets.
func NewCache(capacity int) (*Cache, error) {
	entries, err := lru.New[string, cachedSheet](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Get returns the character stored at path, loading it on a miss or when the
// file changed since it was cached.
func (c *Cache) Get(path string) (*models.Character, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if sheet, ok := c.entries.Get(path); ok {
		if sheet.modTime.Equal(info.ModTime()) {
			return sheet.character, nil
		}
		c.entries.Remove(path)
	}

	char, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.entries.Put(path, cachedSheet{character: char, modTime: info.ModTime()})
	return char, nil
}

// Invalidate drops path from the cache, reporting whether it was cached.
func (c *Cache) Invalidate(path string) bool {
	return c.entries.Remove(path)
}

// Clear empties the cache, keeping cumulative hit/miss counters.
func (c *Cache) Clear() {
	c.entries.Clear()
}

// Stats reports the underlying cache counters. A stale entry counts as a
// hit on lookup even though it triggers a reload.
func (c *Cache) Stats() lru.Stats {
	return c.entries.Stats()
}
