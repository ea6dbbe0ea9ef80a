// Package collection provides a lazy, name-indexed view over a list of
// native child objects.
package collection

import (
	"fmt"
	"sync"

	"github.com/LoveWonYoung/nixnet/status"
)

// Source reads the underlying native list.
type Source[T any] interface {
	// Len is a live length query.
	Len() (int, error)
	// Names fetches the ordered child names.
	Names() ([]string, error)
	// Resolve turns the cached position and name of an item into a value.
	Resolve(index int, name string) (T, error)
}

// Mutator adds and removes native children. Delete must find the child by
// name and delete it.
type Mutator interface {
	Create(name string) error
	Delete(name string) error
}

// Collection caches child names on first use. Index and name lookups are
// answered from the cache until it is invalidated; Len always asks the
// driver. A list changed behind the collection's back is therefore visible
// through Len, and through Items, which compares the two, but not through
// GetByName.
type Collection[T any] struct {
	src Source[T]
	mut Mutator

	mu    sync.Mutex
	names []string
	valid bool
}

// New returns a read-only collection over src.
func New[T any](src Source[T]) *Collection[T] {
	return &Collection[T]{src: src}
}

// NewMutable returns a collection that can also add and remove children.
func NewMutable[T any](src Source[T], mut Mutator) *Collection[T] {
	return &Collection[T]{src: src, mut: mut}
}

func (c *Collection[T]) Len() (int, error) {
	return c.src.Len()
}

// Names returns a copy of the cached names, fetching them on first use.
func (c *Collection[T]) Names() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, err
	}
	return append([]string(nil), c.names...), nil
}

// load must be called with c.mu held.
func (c *Collection[T]) load() error {
	if c.valid {
		return nil
	}
	names, err := c.src.Names()
	if err != nil {
		return err
	}
	c.names = names
	c.valid = true
	return nil
}

// Invalidate drops the name cache.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	c.names = nil
	c.valid = false
	c.mu.Unlock()
}

// Get returns the item at position i of the cached list.
func (c *Collection[T]) Get(i int) (T, error) {
	var zero T
	c.mu.Lock()
	if err := c.load(); err != nil {
		c.mu.Unlock()
		return zero, err
	}
	if i < 0 || i >= len(c.names) {
		n := len(c.names)
		c.mu.Unlock()
		return zero, fmt.Errorf("index %d of %d: %w", i, n, status.ErrIndexOutOfRange)
	}
	name := c.names[i]
	c.mu.Unlock()
	return c.src.Resolve(i, name)
}

// GetByName looks name up in the cached list. A miss is final: there is no
// fallback to the driver.
func (c *Collection[T]) GetByName(name string) (T, error) {
	var zero T
	c.mu.Lock()
	if err := c.load(); err != nil {
		c.mu.Unlock()
		return zero, err
	}
	i := c.indexOf(name)
	c.mu.Unlock()
	if i < 0 {
		return zero, fmt.Errorf("%q: %w", name, status.ErrNotFound)
	}
	return c.src.Resolve(i, name)
}

func (c *Collection[T]) Contains(name string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return false, err
	}
	return c.indexOf(name) >= 0, nil
}

func (c *Collection[T]) indexOf(name string) int {
	for i, n := range c.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Items resolves every cached item. If the live length no longer matches the
// cache, the names are fetched again once first.
func (c *Collection[T]) Items() ([]T, error) {
	n, err := c.src.Len()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if err := c.load(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if len(c.names) != n {
		c.valid = false
		if err := c.load(); err != nil {
			c.mu.Unlock()
			return nil, err
		}
	}
	names := append([]string(nil), c.names...)
	c.mu.Unlock()

	out := make([]T, 0, len(names))
	for i, name := range names {
		item, err := c.src.Resolve(i, name)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Add creates a child and invalidates the cache.
func (c *Collection[T]) Add(name string) (T, error) {
	var zero T
	if c.mut == nil {
		return zero, fmt.Errorf("collection is read-only: %w", status.ErrInvalidArgument)
	}
	if err := c.mut.Create(name); err != nil {
		return zero, err
	}
	c.Invalidate()
	return c.GetByName(name)
}

// Remove deletes the named child and invalidates the cache.
func (c *Collection[T]) Remove(name string) error {
	if c.mut == nil {
		return fmt.Errorf("collection is read-only: %w", status.ErrInvalidArgument)
	}
	if err := c.mut.Delete(name); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// RemoveAt deletes the child at position i of the cached list.
func (c *Collection[T]) RemoveAt(i int) error {
	c.mu.Lock()
	if err := c.load(); err != nil {
		c.mu.Unlock()
		return err
	}
	if i < 0 || i >= len(c.names) {
		n := len(c.names)
		c.mu.Unlock()
		return fmt.Errorf("index %d of %d: %w", i, n, status.ErrIndexOutOfRange)
	}
	name := c.names[i]
	c.mu.Unlock()
	return c.Remove(name)
}
