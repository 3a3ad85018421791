package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](0)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %d, %v; want 2, true", v, ok)
	}

	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("overwrite: Get(a) = %d, want 10", v)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[string, []uint8](0)

	calls := 0
	create := func() []uint8 {
		calls++
		return []uint8{1, 2, 3}
	}

	first := c.GetOrCreate("k", create)
	second := c.GetOrCreate("k", create)

	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if &first[0] != &second[0] {
		t.Error("second call did not return the cached buffer")
	}
}

func TestEvictionKeepsRecent(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 4; i++ {
		c.Set(i, i)
	}
	// Touch key 0 so it is the most recently used.
	c.Get(0)

	// Exceeding the limit evicts down to 75%.
	c.Set(4, 4)
	if got := c.Len(); got != 3 {
		t.Fatalf("Len = %d after eviction, want 3", got)
	}
	if _, ok := c.Get(0); !ok {
		t.Error("most recently used entry was evicted")
	}
	if _, ok := c.Get(4); !ok {
		t.Error("newest entry was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("least recently used entry survived eviction")
	}
}

func TestUnlimitedNeverEvicts(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 100; i++ {
		c.Set(i, i)
	}
	if got := c.Len(); got != 100 {
		t.Errorf("Len = %d, want 100", got)
	}
}

func TestClear(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if got := c.Len(); got != 0 {
		t.Errorf("Len after Clear = %d, want 0", got)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("entry survived Clear")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int](16)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%32)
				c.GetOrCreate(key, func() int { return i })
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
}
