package world

import "fmt"

// Store is a keyed attribute table over canonical identities (Hex or Edge).
// Keys compare by value, so two structurally equal keys resolve to the same
// slot. Each key is written once during its generation phase and read
// thereafter.
type Store[K comparable, V any] struct {
	values map[K]V
}

// NewStore returns an empty attribute store.
func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{values: make(map[K]V)}
}

// Set stores the value under the key.
func (s *Store[K, V]) Set(key K, value V) {
	s.values[key] = value
}

// Get returns the stored value and whether the key was ever written.
// The second result distinguishes an absent key from a stored zero value.
func (s *Store[K, V]) Get(key K) (V, bool) {
	v, ok := s.values[key]
	return v, ok
}

// MustGet returns the stored value and panics if the key was never written.
// Generation phases run in strict order, so an absent key here is a
// phase-ordering bug, not a runtime condition.
func (s *Store[K, V]) MustGet(key K) V {
	v, ok := s.values[key]
	if !ok {
		panic(fmt.Sprintf("world: store read of unwritten key %v", key))
	}
	return v
}

// Has reports whether the key was ever written.
func (s *Store[K, V]) Has(key K) bool {
	_, ok := s.values[key]
	return ok
}

// Delete removes the key. Absent keys are a no-op.
func (s *Store[K, V]) Delete(key K) {
	delete(s.values, key)
}

// Len returns the number of stored keys.
func (s *Store[K, V]) Len() int {
	return len(s.values)
}
