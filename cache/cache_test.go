package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNewShardedDefaults(t *testing.T) {
	c := NewSharded[string, int](0, StringHasher)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestShardedGetSet(t *testing.T) {
	c := NewSharded[string, float64](8, StringHasher)
	c.Set("foo", 30)

	got, ok := c.Get("foo")
	if !ok || got != 30 {
		t.Errorf("Get(foo) = %v, %v; want 30, true", got, ok)
	}
	if _, ok := c.Get("bar"); ok {
		t.Error("Get(bar) found a missing key")
	}
	c.Set("foo", 31)
	if got, _ := c.Get("foo"); got != 31 {
		t.Errorf("Get(foo) after overwrite = %v, want 31", got)
	}
}

func TestShardedGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)
	calls := 0
	create := func() int {
		calls++
		return 7
	}
	for range 3 {
		if got := c.GetOrCreate("k", create); got != 7 {
			t.Errorf("GetOrCreate() = %d, want 7", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	st := c.Stats()
	if st.Hits != 2 || st.Misses != 1 {
		t.Errorf("stats = %+v, want 2 hits and 1 miss", st)
	}
	if r := st.HitRate(); r < 0.66 || r > 0.67 {
		t.Errorf("HitRate() = %v, want 2/3", r)
	}
}

func TestShardedEviction(t *testing.T) {
	// Identity hasher keeps every key in shard 0.
	c := NewSharded[uint64, int](2, func(uint64) uint64 { return 0 })
	c.Set(1, 1)
	c.Set(2, 2)
	c.Get(1) // 2 is now least recently used
	c.Set(3, 3)

	if _, ok := c.Get(2); ok {
		t.Error("least recently used key survived eviction")
	}
	if _, ok := c.Get(1); !ok {
		t.Error("recently used key was evicted")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestShardedClear(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)
	for i := range 20 {
		c.Set(strconv.Itoa(i), i)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}

func TestShardedConcurrent(t *testing.T) {
	c := NewSharded[string, int](64, StringHasher)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				key := strconv.Itoa(i % 10)
				c.GetOrCreate(key, func() int { return g })
			}
		}()
	}
	wg.Wait()
	if c.Len() != 10 {
		t.Errorf("Len() = %d, want 10", c.Len())
	}
}
