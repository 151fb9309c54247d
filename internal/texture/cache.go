package texture

import (
	"fmt"
	"image"
	"os"
	"sync"
)

// Resolver resolves a texture name to a decoded image, or nil.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Failed loads are cached as nil
// and reported once on stderr.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	index *Index
}

// NewCache creates a cache backed by index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*image.NRGBA),
		index: index,
	}
}

// Resolve loads and caches a texture by name.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	img, exists := c.items[path]
	c.mu.RUnlock()
	if exists {
		return img
	}

	loaded, err := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if img, exists := c.items[path]; exists {
		return img
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	c.items[path] = loaded
	return loaded
}

// Loaded returns the number of cached entries, including failed loads.
func (c *Cache) Loaded() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
