package memstore

import "sync"

// collection is a map-backed set of entities of one kind with a kind-local
// auto-increment id. Ids start at 1 and are never reused. A separate order
// slice keeps listings stable in insertion order for the lifetime of the
// process; nothing is ever physically deleted.
type collection[T any] struct {
	mu     sync.RWMutex
	items  map[int]T
	order  []int
	nextID int
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[int]T), nextID: 1}
}

// insert assigns the next id, builds the entity under the lock and stores it.
// Id assignment and insertion are a single atomic step.
func (c *collection[T]) insert(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	item := build(id)
	c.items[id] = item
	c.order = append(c.order, id)
	return item
}

func (c *collection[T]) get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// list returns entities in insertion order, keeping those for which keep
// returns true. A nil keep returns everything.
func (c *collection[T]) list(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		item := c.items[id]
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// update replaces the entity at id with mutate's result. Returns false when
// the id is absent, in which case the collection is untouched.
func (c *collection[T]) update(id int, mutate func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	item = mutate(item)
	c.items[id] = item
	return item, true
}

// findUpdate scans in insertion order for the first entity matching match
// and, when mutate is non-nil, replaces it with mutate's result. The scan and
// the write happen under one lock so concurrent callers cannot interleave.
func (c *collection[T]) findUpdate(match func(T) bool, mutate func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range c.order {
		item := c.items[id]
		if !match(item) {
			continue
		}
		if mutate != nil {
			item = mutate(item)
			c.items[id] = item
		}
		return item, true
	}
	var zero T
	return zero, false
}

// findOrInsert looks for a matching entity and applies mutate to it; when no
// entity matches, it assigns the next id and inserts build's result. The
// whole operation holds the lock once, so an insert cannot race a concurrent
// match on the same key.
func (c *collection[T]) findOrInsert(match func(T) bool, mutate func(T) T, build func(id int) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range c.order {
		item := c.items[id]
		if !match(item) {
			continue
		}
		if mutate != nil {
			item = mutate(item)
			c.items[id] = item
		}
		return item, true
	}
	id := c.nextID
	c.nextID++
	item := build(id)
	c.items[id] = item
	c.order = append(c.order, id)
	return item, false
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
