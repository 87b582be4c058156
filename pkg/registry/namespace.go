package registry

import (
	"maps"
	"slices"
)

// Namespace is a read-only view of a flat npm configuration.
type Namespace interface {
	// Keys returns every key in the namespace in a deterministic order.
	Keys() []string
	// Get returns the value stored under key and whether it exists.
	Get(key string) (string, bool)
}

// MutableNamespace is a Namespace that accepts edits.
type MutableNamespace interface {
	Namespace
	Set(key, value string)
	Delete(key string)
}

// MapNamespace is an in-memory MutableNamespace backed by a map.
type MapNamespace map[string]string

// Compile-time interface compliance verification.
var _ MutableNamespace = MapNamespace(nil)

// Keys returns the map keys sorted lexically.
func (m MapNamespace) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Get returns the value for key.
func (m MapNamespace) Get(key string) (string, bool) {
	value, ok := m[key]

	return value, ok
}

// Set stores value under key.
func (m MapNamespace) Set(key, value string) {
	m[key] = value
}

// Delete removes key. Missing keys are ignored.
func (m MapNamespace) Delete(key string) {
	delete(m, key)
}
