// Package cache provides the process-wide response cache used by the task
// read paths. It is a plain keyed store with explicit invalidation: no TTL,
// no size bound, no persistence across restarts.
package cache

import (
	"fmt"
	"sync"
)

// Cache is a mutex-guarded map from cache key to a previously computed
// result. Get/Set/Invalidate are individually safe for concurrent use, but
// the cache-aside pattern built on top of them is not atomic: a writer
// invalidating between a reader's store query and its Set can leave a stale
// entry until the next invalidation. That window is an accepted limitation.
type Cache struct {
	mu      sync.Mutex
	entries map[string]interface{}
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]interface{}),
	}
}

// Get returns the value stored under key, if any.
// Absence is the only miss signal; entries never expire on their own.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[key]
	return value, ok
}

// Set stores value under key, replacing any previous entry.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
}

// Invalidate removes the entries for the given keys.
// Removing an absent key is a no-op.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}
}

// Len reports the number of live entries. Used by tests.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Cache keys are partitioned by owner so one identity's cached reads can
// never be served to another.

// TaskListKey returns the cache key for an owner's full task list.
func TaskListKey(ownerEmail string) string {
	return "tasks:" + ownerEmail
}

// TaskKey returns the cache key for a single task detail read.
func TaskKey(ownerEmail string, id int64) string {
	return fmt.Sprintf("task:%s:%d", ownerEmail, id)
}
