package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetSetInvalidate(t *testing.T) {
	t.Parallel()

	c := New()

	_, ok := c.Get("missing")
	assert.False(t, ok, "empty cache should miss")

	c.Set("k", 42)
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	c.Set("k", 43)
	v, _ = c.Get("k")
	assert.Equal(t, 43, v, "Set should replace the previous entry")

	c.Invalidate("k")
	_, ok = c.Get("k")
	assert.False(t, ok, "invalidated key should miss")

	// Invalidating an absent key is a no-op
	c.Invalidate("k", "never-set")
	assert.Equal(t, 0, c.Len())
}

func TestCacheInvalidateMultipleKeys(t *testing.T) {
	t.Parallel()

	c := New()
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	c.Invalidate("a", "c")

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.False(t, ok)

	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			c.Set("shared", 1)
		}()
		go func() {
			defer wg.Done()
			c.Get("shared")
		}()
		go func() {
			defer wg.Done()
			c.Invalidate("shared")
		}()
	}

	wg.Wait()
}

func TestCacheKeysArePartitionedByOwner(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tasks:a@example.com", TaskListKey("a@example.com"))
	assert.Equal(t, "task:a@example.com:7", TaskKey("a@example.com", 7))

	// Two identities never share a key for the same logical read.
	assert.NotEqual(t, TaskListKey("a@example.com"), TaskListKey("b@example.com"))
	assert.NotEqual(t, TaskKey("a@example.com", 1), TaskKey("b@example.com", 1))
}
