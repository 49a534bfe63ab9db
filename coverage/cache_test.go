// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"testing"
	"time"
)

func TestCacheKeyRoundsCoordinates(t *testing.T) {
	// GPS jitter below ~11m must land on the same key.
	a := CacheKey(Coordinates{Lat: -26.20411, Lng: 28.04732}, nil, false, false)
	b := CacheKey(Coordinates{Lat: -26.20413, Lng: 28.04729}, nil, false, false)
	if a != b {
		t.Errorf("Expected jittered coordinates to share a key: %s vs %s", a, b)
	}

	c := CacheKey(Coordinates{Lat: -26.2141, Lng: 28.0473}, nil, false, false)
	if a == c {
		t.Error("Expected distinct locations to get distinct keys")
	}
}

func TestCacheKeyServiceTypeOrderInsensitive(t *testing.T) {
	coords := Coordinates{Lat: -26.2041, Lng: 28.0473}
	a := CacheKey(coords, []ServiceType{ServiceFibre, ServiceLTE}, false, false)
	b := CacheKey(coords, []ServiceType{ServiceLTE, ServiceFibre}, false, false)
	if a != b {
		t.Errorf("Expected type order not to matter: %s vs %s", a, b)
	}

	all := CacheKey(coords, nil, false, false)
	if a == all {
		t.Error("Expected a restricted check to have a different key from an unrestricted one")
	}
	withSignal := CacheKey(coords, []ServiceType{ServiceFibre, ServiceLTE}, true, false)
	if a == withSignal {
		t.Error("Expected the signal flag to change the key")
	}
}

func TestCacheKeyHybridFlag(t *testing.T) {
	coords := Coordinates{Lat: -26.2041, Lng: 28.0473}
	plain := CacheKey(coords, nil, false, false)
	hybrid := CacheKey(coords, nil, false, true)
	if plain == hybrid {
		t.Error("Expected the hybrid flag to change the key")
	}
}

func TestResultCacheGetPut(t *testing.T) {
	cache := NewResultCache(time.Minute)
	key := CacheKey(Coordinates{Lat: -26.2041, Lng: 28.0473}, nil, false, false)

	if _, ok := cache.Get(key); ok {
		t.Fatal("Expected a miss on an empty cache")
	}

	result := CoverageResult{RequestID: "req-1", CoverageAvailable: true}
	cache.Put(key, result)

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("Expected a hit after Put")
	}
	if got.RequestID != "req-1" {
		t.Errorf("Expected the stored result back, got %s", got.RequestID)
	}
}

func TestResultCacheExpiry(t *testing.T) {
	cache := NewResultCache(time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	key := "k"
	cache.Put(key, CoverageResult{RequestID: "req-1"})

	now = now.Add(59 * time.Second)
	if _, ok := cache.Get(key); !ok {
		t.Error("Expected a hit just inside the TTL")
	}

	now = now.Add(2 * time.Second)
	if _, ok := cache.Get(key); ok {
		t.Error("Expected a miss past the TTL")
	}
	if cache.Len() != 0 {
		t.Errorf("Expected expired entries pruned, got %d", cache.Len())
	}
}

func TestResultCacheDefaultTTL(t *testing.T) {
	cache := NewResultCache(0)
	if cache.ttl != DefaultCacheTTL {
		t.Errorf("Expected the default TTL, got %v", cache.ttl)
	}
}

func TestResultCacheClear(t *testing.T) {
	cache := NewResultCache(time.Minute)
	cache.Put("a", CoverageResult{})
	cache.Put("b", CoverageResult{})
	if cache.Len() != 2 {
		t.Fatalf("Expected two entries, got %d", cache.Len())
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Expected an empty cache after Clear, got %d", cache.Len())
	}
}
