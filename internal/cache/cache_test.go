// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestCache[V any](t *testing.T, ttl time.Duration) *Cache[V] {
	t.Helper()
	c := New[V](ttl)
	t.Cleanup(c.Close)
	return c
}

func TestCacheBasicOperations(t *testing.T) {
	c := newTestCache[string](t, time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	value, exists = c.Get("key2")
	if exists || value != "" {
		t.Errorf("Expected key2 to not exist, got %q", value)
	}
}

func TestCacheSliceValues(t *testing.T) {
	c := newTestCache[[]int](t, time.Minute)

	c.Set("pool", []int{1, 2, 3})
	got, ok := c.Get("pool")
	if !ok || len(got) != 3 {
		t.Fatalf("Get() = %v, %v", got, ok)
	}

	missing, ok := c.Get("none")
	if ok || missing != nil {
		t.Errorf("missing key returned %v, %v", missing, ok)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := newTestCache[string](t, 100*time.Millisecond)

	c.Set("key1", "value1")
	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	time.Sleep(150 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry still stored, Len() = %d", c.Len())
	}
}

func TestCacheSetWithTTLOverridesDefault(t *testing.T) {
	c := newTestCache[string](t, time.Minute)

	c.SetWithTTL("short", "v", 50*time.Millisecond)
	c.Set("long", "v")

	time.Sleep(100 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("short TTL entry should be expired")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("default TTL entry should still exist")
	}
}

func TestCacheDelete(t *testing.T) {
	c := newTestCache[string](t, time.Minute)

	c.Set("key1", "value1")
	c.Delete("key1")
	c.Delete("never-set")

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be deleted")
	}
	if got := c.GetStats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCacheClear(t *testing.T) {
	c := newTestCache[int](t, time.Minute)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("key%d", i), i)
	}
	c.Clear()

	for i := 0; i < 3; i++ {
		if _, exists := c.Get(fmt.Sprintf("key%d", i)); exists {
			t.Errorf("Expected key%d to be cleared", i)
		}
	}

	stats := c.GetStats()
	if stats.TotalKeys != 0 {
		t.Errorf("TotalKeys = %d, want 0", stats.TotalKeys)
	}
	if stats.Evictions != 3 {
		t.Errorf("Evictions = %d, want 3", stats.Evictions)
	}
}

func TestCacheStats(t *testing.T) {
	c := newTestCache[string](t, time.Minute)

	c.Set("key1", "value1")
	c.Get("key1") // hit
	c.Get("key2") // miss
	c.Get("key1") // hit

	stats := c.GetStats()
	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}
	if stats.TotalKeys != 1 {
		t.Errorf("Expected 1 key, got %d", stats.TotalKeys)
	}

	hitRate := c.HitRate()
	expectedHitRate := 66.66666666666667 // 2/3 * 100
	if hitRate < expectedHitRate-0.01 || hitRate > expectedHitRate+0.01 {
		t.Errorf("Expected hit rate around %.2f%%, got %.2f%%", expectedHitRate, hitRate)
	}
}

func TestCacheHitRateZeroOperations(t *testing.T) {
	c := newTestCache[string](t, time.Minute)
	if c.HitRate() != 0 {
		t.Errorf("HitRate() = %f, want 0", c.HitRate())
	}
}

func TestCacheCleanupLoop(t *testing.T) {
	c := NewWithCleanup[string](20*time.Millisecond, 30*time.Millisecond)
	defer c.Close()

	c.Set("a", "1")
	c.Set("b", "2")

	deadline := time.Now().Add(time.Second)
	for c.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if c.Len() != 0 {
		t.Fatalf("sweep left %d entries", c.Len())
	}
	if got := c.GetStats().Evictions; got != 2 {
		t.Errorf("Evictions = %d, want 2", got)
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	c := New[int](time.Minute)
	c.Close()
	c.Close()

	c.Set("still", 1)
	if v, ok := c.Get("still"); !ok || v != 1 {
		t.Error("cache should remain usable after Close")
	}
}

func TestCacheConcurrency(t *testing.T) {
	c := newTestCache[int](t, time.Minute)

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
	c := New[string](time.Minute)
	defer c.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set("key", "value")
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string](time.Minute)
	defer c.Close()
	c.Set("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}
