// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is short on purpose: coverage footprints change as
// infrastructure is deployed, so minutes, not hours.
const DefaultCacheTTL = 5 * time.Minute

// cacheEntry is always replaced whole; there are no partial updates.
type cacheEntry struct {
	result    CoverageResult
	expiresAt time.Time
}

// ResultCache is a read-through TTL cache for coverage results. It is the
// only cross-request shared mutable state in the engine; writes are
// last-writer-wins on the same key, so a mutex around the map is the whole
// locking discipline.
type ResultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// CacheKey derives the lookup key: coordinates rounded to 4 decimals
// (roughly 11m, enough to absorb GPS jitter) plus every option that
// changes the result shape: requested service types, the signal-detail
// flag and the hybrid-sources flag.
func CacheKey(coords Coordinates, serviceTypes []ServiceType, includeSignal, hybrid bool) string {
	types := make([]string, 0, len(serviceTypes))
	for _, t := range serviceTypes {
		types = append(types, string(t))
	}
	sort.Strings(types)
	typesPart := "all"
	if len(types) > 0 {
		typesPart = strings.Join(types, ",")
	}
	return fmt.Sprintf("%.4f,%.4f|%s|%t|%t", coords.Lat, coords.Lng, typesPart, includeSignal, hybrid)
}

func (c *ResultCache) Get(key string) (CoverageResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return CoverageResult{}, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return CoverageResult{}, false
	}
	return entry.result, true
}

func (c *ResultCache) Put(key string, result CoverageResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: result, expiresAt: c.now().Add(c.ttl)}
}

// Len reports live entries, pruning expired ones along the way.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	return len(c.entries)
}

// Clear drops every entry.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
