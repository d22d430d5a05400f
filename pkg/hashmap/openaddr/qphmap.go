package openaddr

import (
	"iter"

	"github.com/rs/zerolog/log"

	"github.com/scottcagno/hashmaps/pkg/common"
	"github.com/scottcagno/hashmaps/pkg/container/array"
	"github.com/scottcagno/hashmaps/pkg/hash"
	"github.com/scottcagno/hashmaps/pkg/hashmap"
)

// state describes what a bucket currently holds
type state uint8

const (
	empty     state = iota // never held an entry since the table was built
	live                   // holds a live entry
	tombstone              // held an entry that has since been removed
)

// entry is a key value pair that is found in each bucket
type entry[V any] struct {
	key string
	val V
}

// bucket represents a single slot in the HashMap table
type bucket[V any] struct {
	state state
	entry[V]
}

func newBucket[V any]() *bucket[V] {
	return &bucket[V]{state: empty}
}

// HashMap represents a closed hashing hashtable implementation using
// quadratic probing. It is not safe for concurrent use.
type HashMap[V any] struct {
	hash     hash.Func
	capacity int
	size     int
	buckets  *array.Array[*bucket[V]]
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

func newBuckets[V any](capacity int) *array.Array[*bucket[V]] {
	return array.Filled(capacity, newBucket[V])
}

// slot returns the bucket at index i
func (m *HashMap[V]) slot(i int) *bucket[V] {
	b, err := m.buckets.GetAtIndex(i)
	common.ErrCheck(err)
	return b
}

// start returns the initial index of the probe sequence for key
func (m *HashMap[V]) start(key string) int {
	return int(m.hash(key) % uint64(m.capacity))
}

// probe returns the j-th index of the probe sequence beginning at start
func (m *HashMap[V]) probe(start, j int) int {
	return (start + j*j) % m.capacity
}

// Put inserts a key value entry, or updates the value of a live entry with
// the same key. The table doubles (to the next prime) first if it is half full.
func (m *HashMap[V]) Put(key string, val V) {
	// check and see if we need to resize
	if m.TableLoad() >= hashmap.OpenAddrMaxLoad {
		m.ResizeTable(2 * m.capacity)
	}
	free := -1
	start := m.start(key)
	for j := 0; j < m.capacity; j++ {
		i := m.probe(start, j)
		b := m.slot(i)
		switch b.state {
		case empty:
			if free < 0 {
				free = i
			}
			m.insert(free, key, val)
			return
		case tombstone:
			// remember the first one, but the key may still be live further on
			if free < 0 {
				free = i
			}
		case live:
			if b.key == key {
				b.val = val
				return
			}
		}
	}
	if free >= 0 {
		m.insert(free, key, val)
	}
}

// insert places a new live entry at index i
func (m *HashMap[V]) insert(i int, key string, val V) {
	common.ErrCheck(m.buckets.SetAtIndex(i, &bucket[V]{
		state: live,
		entry: entry[V]{
			key: key,
			val: val,
		},
	}))
	m.size++
}

// lookup returns the live bucket holding key, or nil
func (m *HashMap[V]) lookup(key string) *bucket[V] {
	start := m.start(key)
	for j := 0; j < m.capacity; j++ {
		b := m.slot(m.probe(start, j))
		if b.state == empty {
			// havent located anything
			return nil
		}
		if b.state == live && b.key == key {
			return b
		}
	}
	return nil
}

// Get returns the value for a given key, or returns false if none could be found
func (m *HashMap[V]) Get(key string) (V, bool) {
	if b := m.lookup(key); b != nil {
		return b.val, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether a live entry exists for key
func (m *HashMap[V]) ContainsKey(key string) bool {
	return m.lookup(key) != nil
}

// Remove tombstones the entry for key and returns the removed value, or false
// if there was none. The bucket stays occupied so later probes pass through it.
func (m *HashMap[V]) Remove(key string) (V, bool) {
	var zero V
	b := m.lookup(key)
	if b == nil {
		return zero, false
	}
	val := b.val
	b.state = tombstone
	b.val = zero
	m.size--
	return val, true
}

// ResizeTable rebuilds the table with the provided capacity, rounded up to a
// prime. It does nothing when capacity is less than the current size. Live
// entries are put again into the new table and tombstones are dropped; the
// replay may grow the table further to respect the load factor.
func (m *HashMap[V]) ResizeTable(capacity int) {
	if capacity < m.size {
		return
	}
	capacity = hashmap.AlignCapacity(capacity)
	log.Debug().
		Str("component", "openaddr").
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
		if b.state == live {
			m.Put(b.key, b.val)
		}
	}
}

// TableLoad returns the current load factor of the HashMap
func (m *HashMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(m.capacity)
}

// EmptyBuckets returns the number of buckets not holding a live entry.
// Tombstoned buckets count as empty.
func (m *HashMap[V]) EmptyBuckets() int {
	return m.capacity - m.size
}

// Tombstones returns the number of tombstoned buckets
func (m *HashMap[V]) Tombstones() int {
	var n int
	for i := 0; i < m.buckets.Len(); i++ {
		if m.slot(i).state == tombstone {
			n++
		}
	}
	return n
}

// KeysAndValues returns every live entry in bucket order
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

// All returns an iterator over the live entries in bucket order
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
