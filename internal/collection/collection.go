// Package collection provides the insertion-ordered containers that host
// units, actions, and effects.
//
// Keyed enforces key uniqueness on Add and iterates in insertion order.
// List is an append-only ordered sequence. Values returns a snapshot slice,
// so callers may grow a collection while walking an earlier snapshot.
package collection

import (
	"fmt"

	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

// ErrDuplicateKey is returned when Add receives a key already present.
var ErrDuplicateKey = apperrors.New(apperrors.CodeCollectionDuplicateKey, "collection key already exists")

// Keyed is an insertion-ordered collection keyed by K.
type Keyed[K comparable, V any] struct {
	keyOf func(V) K
	order []K
	items map[K]V
}

// NewKeyed returns an empty keyed collection using keyOf to derive keys.
func NewKeyed[K comparable, V any](keyOf func(V) K) *Keyed[K, V] {
	return &Keyed[K, V]{
		keyOf: keyOf,
		items: map[K]V{},
	}
}

// Add appends v. It fails with ErrDuplicateKey when v's key exists.
func (c *Keyed[K, V]) Add(v V) error {
	key := c.keyOf(v)
	if _, ok := c.items[key]; ok {
		return apperrors.WithMetadata(
			apperrors.CodeCollectionDuplicateKey,
			fmt.Sprintf("key %v already exists", key),
			map[string]string{"Key": fmt.Sprint(key)},
		)
	}
	c.order = append(c.order, key)
	c.items[key] = v
	return nil
}

// Set replaces the value stored under v's key in place, or appends it.
func (c *Keyed[K, V]) Set(v V) {
	key := c.keyOf(v)
	if _, ok := c.items[key]; !ok {
		c.order = append(c.order, key)
	}
	c.items[key] = v
}

// Get returns the value stored under key.
func (c *Keyed[K, V]) Get(key K) (V, bool) {
	v, ok := c.items[key]
	return v, ok
}

// Exists reports whether key is present.
func (c *Keyed[K, V]) Exists(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Remove deletes key, keeping the order of the remaining values.
func (c *Keyed[K, V]) Remove(key K) bool {
	if _, ok := c.items[key]; !ok {
		return false
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Count returns the number of values.
func (c *Keyed[K, V]) Count() int {
	return len(c.order)
}

// Values returns the values in insertion order.
func (c *Keyed[K, V]) Values() []V {
	out := make([]V, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.items[key])
	}
	return out
}

// Concat adds every value of other, failing on the first duplicate key.
func (c *Keyed[K, V]) Concat(other *Keyed[K, V]) error {
	if other == nil {
		return nil
	}
	for _, v := range other.Values() {
		if err := c.Add(v); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a copy whose values are produced by clone.
func (c *Keyed[K, V]) Clone(clone func(V) V) *Keyed[K, V] {
	out := NewKeyed(c.keyOf)
	for _, key := range c.order {
		out.order = append(out.order, key)
		out.items[key] = clone(c.items[key])
	}
	return out
}

// List is an append-only ordered collection.
type List[V any] struct {
	items []V
}

// NewList returns a list holding values in order.
func NewList[V any](values ...V) *List[V] {
	l := &List[V]{}
	l.items = append(l.items, values...)
	return l
}

// Add appends v.
func (l *List[V]) Add(v V) {
	l.items = append(l.items, v)
}

// Count returns the number of values.
func (l *List[V]) Count() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Values returns the values in order.
func (l *List[V]) Values() []V {
	if l == nil {
		return nil
	}
	out := make([]V, len(l.items))
	copy(out, l.items)
	return out
}

// Concat appends every value of other.
func (l *List[V]) Concat(other *List[V]) {
	if other == nil {
		return
	}
	l.items = append(l.items, other.items...)
}

// Clone returns a copy whose values are produced by clone.
func (l *List[V]) Clone(clone func(V) V) *List[V] {
	out := &List[V]{items: make([]V, 0, l.Count())}
	for _, v := range l.Values() {
		out.items = append(out.items, clone(v))
	}
	return out
}
