package cache

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"meteoroloji/datasource"
	"meteoroloji/logger"
	"meteoroloji/models"
)

// CachedLocationSource wraps a LocationSource and memoizes successful
// lookups for a fixed duration. Every call returns a fresh copy, so callers
// may release results without touching the cache. Failures are not cached.
type CachedLocationSource struct {
	source         datasource.LocationSource
	cache          map[string]cacheEntry
	mutex          sync.RWMutex
	cacheDuration  time.Duration
	cacheHitCount  int
	cacheMissCount int
	now            func() time.Time
}

// cacheEntry represents a cached lookup result with its timestamp
type cacheEntry struct {
	Locations []models.Location
	Timestamp time.Time
}

// NewCachedLocationSource creates a new cached wrapper around a location source
func NewCachedLocationSource(source datasource.LocationSource, cacheDuration time.Duration) *CachedLocationSource {
	return &CachedLocationSource{
		source:        source,
		cache:         make(map[string]cacheEntry),
		cacheDuration: cacheDuration,
		now:           time.Now,
	}
}

// Name returns the name of the underlying source with [Cached] suffix
func (c *CachedLocationSource) Name() string {
	return c.source.Name() + " [Cached]"
}

func (c *CachedLocationSource) Cities(ctx context.Context) ([]models.Location, error) {
	return c.lookup("cities", func() ([]models.Location, error) {
		return c.source.Cities(ctx)
	})
}

func (c *CachedLocationSource) District(ctx context.Context, city, district string) (models.Location, error) {
	locs, err := c.lookup("district:"+normalize(city)+"/"+normalize(district), func() ([]models.Location, error) {
		loc, err := c.source.District(ctx, city, district)
		if err != nil {
			return nil, err
		}
		return []models.Location{loc}, nil
	})
	if err != nil {
		return models.Location{}, err
	}
	return locs[0], nil
}

func (c *CachedLocationSource) DistrictsInCity(ctx context.Context, city string) ([]models.Location, error) {
	return c.lookup("districts:"+normalize(city), func() ([]models.Location, error) {
		return c.source.DistrictsInCity(ctx, city)
	})
}

func (c *CachedLocationSource) lookup(key string, fetch func() ([]models.Location, error)) ([]models.Location, error) {
	// First check if we have this data in the cache
	c.mutex.RLock()
	entry, found := c.cache[key]
	c.mutex.RUnlock()

	// If found and not expired, return a copy of the cached data
	if found && c.now().Sub(entry.Timestamp) < c.cacheDuration {
		c.mutex.Lock()
		c.cacheHitCount++
		c.mutex.Unlock()

		logger.Debugf("Cache HIT for %s from %s (age: %s)",
			key, c.source.Name(), c.now().Sub(entry.Timestamp).Round(time.Second))
		return slices.Clone(entry.Locations), nil
	}

	// Cache miss or expired, fetch fresh data
	c.mutex.Lock()
	c.cacheMissCount++
	c.mutex.Unlock()

	logger.Debugf("Cache MISS for %s from %s, fetching fresh data", key, c.source.Name())

	locs, err := fetch()
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	c.cache[key] = cacheEntry{
		Locations: slices.Clone(locs),
		Timestamp: c.now(),
	}
	c.mutex.Unlock()

	return locs, nil
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedLocationSource) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount
}

// Purge drops every cached entry.
func (c *CachedLocationSource) Purge() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.cache = make(map[string]cacheEntry)
}

// normalize trims names for use in cache keys. Case is left alone.
func normalize(name string) string {
	return strings.TrimSpace(name)
}

// Ensure CachedLocationSource implements the LocationSource interface
var _ datasource.LocationSource = (*CachedLocationSource)(nil)
