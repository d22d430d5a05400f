// Package hashmap holds the contract shared by the open addressing and the
// separate chaining hash maps found in the openaddr and chained packages.
package hashmap

import "iter"

// Pair is a single key value pair as reported by KeysAndValues
type Pair[V any] struct {
	Key   string
	Value V
}

// Map is the behavior both hash map variants provide. Keys are strings and
// values are opaque to the map.
type Map[V any] interface {
	// Put inserts or updates the value stored under key
	Put(key string, val V)
	// Get returns the value stored under key, or false if there is none
	Get(key string) (V, bool)
	ContainsKey(key string) bool
	// Remove deletes key and returns the value it held, or false if absent
	Remove(key string) (V, bool)
	// ResizeTable rebuilds the table with (at least) the provided capacity
	ResizeTable(capacity int)
	TableLoad() float64
	EmptyBuckets() int
	KeysAndValues() []Pair[V]
	Clear()
	Len() int
	Cap() int
	Range(fn func(key string, val V) bool)
	All() iter.Seq2[string, V]
}
