package chained

import (
	"iter"

	"github.com/rs/zerolog/log"

	"github.com/scottcagno/hashmaps/pkg/common"
	"github.com/scottcagno/hashmaps/pkg/container/array"
	"github.com/scottcagno/hashmaps/pkg/container/chain"
	"github.com/scottcagno/hashmaps/pkg/hash"
	"github.com/scottcagno/hashmaps/pkg/hashmap"
)

// DefaultCapacity is the capacity used by NewDefaultHashMap
const DefaultCapacity = hashmap.DefaultMapSize

// HashMap represents a hashtable that resolves collisions with separate
// chaining. It is not safe for concurrent use.
type HashMap[V any] struct {
	hash     hash.Func
	capacity int
	size     int
	buckets  *array.Array[*chain.Chain[V]]
}

// NewDefaultHashMap returns a HashMap using DefaultCapacity and hash.Sum
func NewDefaultHashMap[V any]() *HashMap[V] {
	return NewHashMap[V](DefaultCapacity, hash.Sum)
}

// NewHashMap returns a new HashMap whose capacity is the next prime at or
// above the requested capacity. A nil hash function selects hash.Murmur3.
func NewHashMap[V any](capacity int, fn hash.Func) *HashMap[V] {
	if fn == nil {
		fn = hash.Murmur3
	}
	capacity = hashmap.NextPrime(capacity)
	return &HashMap[V]{
		hash:     fn,
		capacity: capacity,
		size:     0,
		buckets:  newBuckets[V](capacity),
	}
}

func newBuckets[V any](capacity int) *array.Array[*chain.Chain[V]] {
	return array.Filled(capacity, chain.New[V])
}

// bucketFor returns the chain key hashes to
func (m *HashMap[V]) bucketFor(key string) *chain.Chain[V] {
	return m.bucketAt(int(m.hash(key) % uint64(m.capacity)))
}

// bucketAt returns the chain at index i
func (m *HashMap[V]) bucketAt(i int) *chain.Chain[V] {
	b, err := m.buckets.GetAtIndex(i)
	common.ErrCheck(err)
	return b
}

// Put inserts a key value entry, or updates the value if the key is already
// present. The table doubles (to the next prime) first once the load reaches one.
func (m *HashMap[V]) Put(key string, val V) {
	// check and see if we need to resize
	if m.TableLoad() >= hashmap.ChainedMaxLoad {
		m.ResizeTable(2 * m.capacity)
	}
	b := m.bucketFor(key)
	if n := b.Contains(key); n != nil {
		n.Value = val
		return
	}
	b.Insert(key, val)
	m.size++
}

// Get returns the value for a given key, or returns false if none could be found
func (m *HashMap[V]) Get(key string) (V, bool) {
	if n := m.bucketFor(key).Contains(key); n != nil {
		return n.Value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present
func (m *HashMap[V]) ContainsKey(key string) bool {
	return m.bucketFor(key).Contains(key) != nil
}

// Remove unlinks the entry for key and returns its value, or false if absent
func (m *HashMap[V]) Remove(key string) (V, bool) {
	var zero V
	b := m.bucketFor(key)
	n := b.Contains(key)
	if n == nil {
		return zero, false
	}
	b.Remove(key)
	m.size--
	return n.Value, true
}

// ResizeTable rebuilds the table with the provided capacity, rounded up to a
// prime, by putting every entry again. It does nothing for capacities below one.
func (m *HashMap[V]) ResizeTable(capacity int) {
	if capacity < 1 {
		return
	}
	capacity = hashmap.AlignCapacity(capacity)
	log.Debug().
		Str("component", "chained").
		Int("from", m.capacity).
		Int("to", capacity).
		Int("size", m.size).
		Msg("Resizing table")

	old := m.buckets
	m.buckets = newBuckets[V](capacity)
	m.capacity = capacity
	m.size = 0
	for i := 0; i < old.Len(); i++ {
		b, err := old.GetAtIndex(i)
		common.ErrCheck(err)
		b.Range(func(n *chain.Node[V]) bool {
			m.Put(n.Key, n.Value)
			return true
		})
	}
}

// TableLoad returns the current load factor of the HashMap
func (m *HashMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(m.capacity)
}

// EmptyBuckets returns the number of chains holding no entries
func (m *HashMap[V]) EmptyBuckets() int {
	var count int
	for i := 0; i < m.buckets.Len(); i++ {
		if m.bucketAt(i).Len() == 0 {
			count++
		}
	}
	return count
}

// LongestChain returns the length of the longest chain in the table
func (m *HashMap[V]) LongestChain() int {
	var longest int
	for i := 0; i < m.buckets.Len(); i++ {
		longest = max(longest, m.bucketAt(i).Len())
	}
	return longest
}

// KeysAndValues returns every entry, chain by chain
func (m *HashMap[V]) KeysAndValues() []hashmap.Pair[V] {
	pairs := make([]hashmap.Pair[V], 0, m.size)
	m.Range(func(key string, val V) bool {
		pairs = append(pairs, hashmap.Pair[V]{Key: key, Value: val})
		return true
	})
	return pairs
}

// Clear empties the HashMap while keeping its capacity
func (m *HashMap[V]) Clear() {
	m.buckets = newBuckets[V](m.capacity)
	m.size = 0
}

// Range takes a function and ranges the HashMap as long as the function
// continues to return true. Range is not safe to perform an insert or remove
// operation while ranging!
func (m *HashMap[V]) Range(fn func(key string, val V) bool) {
	it := m.Iterator()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// All returns an iterator over every entry, chain by chain
func (m *HashMap[V]) All() iter.Seq2[string, V] {
	return m.Range
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap[V]) Len() int {
	return m.size
}

// Cap returns the number of buckets in the HashMap
func (m *HashMap[V]) Cap() int {
	return m.capacity
}
