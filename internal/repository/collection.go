// Package repository implements the in-memory record stores backing the
// program. Each collection is a mutex-guarded map plus an insertion-order
// index so list results are stable across calls. Repositories expose the
// same interface shape a database-backed implementation would.
package repository

import (
	"sync"

	"incentivehub/internal/model"
)

// collection is the shared storage primitive behind every repository.
// Values are stored and returned by copy; callers mutate a copy and commit
// it back through update.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) insert(id string, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, model.ErrNotFound
	}
	return item, nil
}

func (c *collection[T]) update(id string, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return model.ErrNotFound
	}
	c.items[id] = item
	return nil
}

func (c *collection[T]) remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return model.ErrNotFound
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// list returns all items in insertion order.
func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// filter returns the items matching the predicate, in insertion order.
func (c *collection[T]) filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, id := range c.order {
		if keep(c.items[id]) {
			out = append(out, c.items[id])
		}
	}
	return out
}

// replaceAll swaps the whole collection contents, keeping input order.
func (c *collection[T]) replaceAll(ids []string, items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]T, len(items))
	c.order = make([]string, 0, len(items))
	for i, id := range ids {
		c.items[id] = items[i]
		c.order = append(c.order, id)
	}
}
