package poh

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// DefaultCacheSize bounds how many distinct datasets stay parsed in memory
const DefaultCacheSize = 16

// CacheObserver is notified of every cached lookup
type CacheObserver interface {
	RecordDatasetCacheLookup(hit bool)
}

// CachedLoader memoises validated datasets. Local files are keyed by path,
// size and modification time so an edited file is re-read; remote documents
// live until ttl expires. A ttl of zero never expires entries.
type CachedLoader struct {
	loader   *Loader
	cache    *expirable.LRU[string, *performance.Dataset]
	observer CacheObserver
}

// NewCachedLoader wraps loader with an LRU of the given size
func NewCachedLoader(loader *Loader, size int, ttl time.Duration) *CachedLoader {
	if loader == nil {
		loader = NewLoader(nil)
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedLoader{
		loader: loader,
		cache:  expirable.NewLRU[string, *performance.Dataset](size, nil, ttl),
	}
}

// WithObserver attaches an observer for cache hits and misses
func (c *CachedLoader) WithObserver(observer CacheObserver) *CachedLoader {
	c.observer = observer
	return c
}

// Load returns the cached dataset for source, loading it on a miss
func (c *CachedLoader) Load(ctx context.Context, source string) (*performance.Dataset, error) {
	key := cacheKey(source)

	if ds, ok := c.cache.Get(key); ok {
		c.record(true)
		return ds, nil
	}
	c.record(false)

	ds, err := c.loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, ds)
	return ds, nil
}

// Purge drops every cached dataset
func (c *CachedLoader) Purge() {
	c.cache.Purge()
}

// Len returns the number of cached datasets
func (c *CachedLoader) Len() int {
	return c.cache.Len()
}

func (c *CachedLoader) record(hit bool) {
	if c.observer != nil {
		c.observer.RecordDatasetCacheLookup(hit)
	}
}

func cacheKey(source string) string {
	switch {
	case IsBuiltin(source):
		return BuiltinSource
	case IsRemote(source):
		return describeSource(source)
	}

	// A missing file falls through to the loader, which reports it
	info, err := os.Stat(source)
	if err != nil {
		return source
	}
	return fmt.Sprintf("%s@%d:%d", source, info.Size(), info.ModTime().UnixNano())
}
