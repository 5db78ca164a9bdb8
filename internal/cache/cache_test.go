// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/indiepick/internal/metrics"
)

func TestCacheBasicOperations(t *testing.T) {
	c := New[string]("test_basic", time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	value, exists = c.Get("key2")
	if exists {
		t.Error("Expected key2 to not exist")
	}
	if value != "" {
		t.Errorf("Expected zero value on miss, got %q", value)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := New[int]("test_expiration", 50*time.Millisecond)
	defer c.Close()

	c.Set("key1", 1)
	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	time.Sleep(80 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if c.Len() != 0 {
		t.Errorf("Expected expired entry to be removed, Len() = %d", c.Len())
	}
}

func TestCacheSetWithTTLOverridesDefault(t *testing.T) {
	c := New[string]("test_set_ttl", time.Hour)
	defer c.Close()

	c.SetWithTTL("short", "v", time.Nanosecond)
	c.Set("long", "v")
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("short TTL entry should have expired")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("default TTL entry should still exist")
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[string]("test_delete", time.Minute)
	defer c.Close()

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	c.Delete("a")
	c.Delete("missing")
	if _, ok := c.Get("a"); ok {
		t.Error("Expected a to be deleted")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}

	// 1 from Delete("a"), 2 from Clear; Delete("missing") does not count
	if got := c.GetStats().Evictions; got != 3 {
		t.Errorf("Evictions = %d, want 3", got)
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string]("test_stats", time.Minute)
	defer c.Close()

	if c.HitRate() != 0 {
		t.Errorf("HitRate with no operations = %v, want 0", c.HitRate())
	}

	c.Set("key1", "value1")
	c.Get("key1")
	c.Get("key1")
	c.Get("key1")
	c.Get("nope")

	stats := c.GetStats()
	if stats.Hits != 3 {
		t.Errorf("Hits = %d, want 3", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
	}
	if rate := c.HitRate(); rate != 75 {
		t.Errorf("HitRate = %v, want 75", rate)
	}
}

func TestCacheMirrorsPrometheus(t *testing.T) {
	const name = "test_prometheus_mirror"
	c := New[int](name, time.Minute)
	defer c.Close()

	hits := testutil.ToFloat64(metrics.CacheHits.WithLabelValues(name))
	misses := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues(name))

	c.Set("k", 1)
	c.Set("j", 2)
	c.Get("k")
	c.Get("x")

	if got := testutil.ToFloat64(metrics.CacheHits.WithLabelValues(name)); got != hits+1 {
		t.Errorf("cache_hits_total = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues(name)); got != misses+1 {
		t.Errorf("cache_misses_total = %v, want %v", got, misses+1)
	}
	if got := testutil.ToFloat64(metrics.CacheSize.WithLabelValues(name)); got != 2 {
		t.Errorf("cache_entries = %v, want 2", got)
	}
}

func TestCacheManualCleanup(t *testing.T) {
	c := New[string]("test_cleanup", time.Hour)
	defer c.Close()

	c.SetWithTTL("expired1", "v", time.Nanosecond)
	c.SetWithTTL("expired2", "v", time.Nanosecond)
	c.Set("fresh", "v")
	time.Sleep(time.Millisecond)

	before := c.GetStats().LastCleanup
	c.cleanup()

	if c.Len() != 1 {
		t.Errorf("Len() after cleanup = %d, want 1", c.Len())
	}
	stats := c.GetStats()
	if stats.Evictions != 2 {
		t.Errorf("Evictions = %d, want 2", stats.Evictions)
	}
	if !stats.LastCleanup.After(before) {
		t.Error("LastCleanup should advance")
	}
}

func TestCleanupInterval(t *testing.T) {
	tests := []struct {
		ttl  time.Duration
		want time.Duration
	}{
		{0, maxCleanupInterval},
		{-time.Second, maxCleanupInterval},
		{30 * time.Second, 30 * time.Second},
		{time.Hour, maxCleanupInterval},
	}

	for _, tt := range tests {
		t.Run(tt.ttl.String(), func(t *testing.T) {
			if got := cleanupInterval(tt.ttl); got != tt.want {
				t.Errorf("cleanupInterval(%v) = %v, want %v", tt.ttl, got, tt.want)
			}
		})
	}
}

func TestCacheCloseIsIdempotent(t *testing.T) {
	c := New[string]("test_close", time.Minute)
	c.Close()
	c.Close()

	// Cache stays usable after the cleanup loop stops
	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Error("Get after Close should still work")
	}
}

func TestCacheConcurrency(t *testing.T) {
	c := New[int]("test_concurrency", time.Minute)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key%d", j%5)
				c.Set(key, id)
				c.Get(key)
				if j%10 == 0 {
					c.Delete(key)
				}
			}
		}(i)
	}
	wg.Wait()

	stats := c.GetStats()
	if stats.Hits == 0 && stats.Misses == 0 {
		t.Error("Expected some cache activity from concurrent operations")
	}
}

func BenchmarkCacheSet(b *testing.B) {
	c := New[int]("bench_set", time.Minute)
	defer c.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set("key", i)
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[int]("bench_get", time.Minute)
	defer c.Close()
	c.Set("key", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}
