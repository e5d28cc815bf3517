package pricefeed

import (
	"sync"
	"time"
)

type cacheEntry[T any] struct {
	value     T
	err       error
	fetchedAt time.Time
}

// cache keeps the last outcome per key. Successes live for ttl, failures for
// cooldown.
type cache[T any] struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry[T]
	ttl      time.Duration
	cooldown time.Duration
	now      func() time.Time
}

func newCache[T any](ttl, cooldown time.Duration, now func() time.Time) *cache[T] {
	return &cache[T]{
		entries:  make(map[string]cacheEntry[T]),
		ttl:      ttl,
		cooldown: cooldown,
		now:      now,
	}
}

func (c *cache[T]) get(key string) (cacheEntry[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return e, false
	}
	if c.expired(e) {
		delete(c.entries, key)
		return cacheEntry[T]{}, false
	}
	return e, true
}

func (c *cache[T]) expired(e cacheEntry[T]) bool {
	window := c.ttl
	if e.err != nil {
		window = c.cooldown
	}
	return c.now().Sub(e.fetchedAt) >= window
}

func (c *cache[T]) put(key string, value T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry[T]{value: value, err: err, fetchedAt: c.now()}
}

// sweep drops entries past their window, including keys nobody asks for again.
func (c *cache[T]) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}
