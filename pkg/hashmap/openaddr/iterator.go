package openaddr

import (
	"github.com/scottcagno/hashmaps/pkg/common"
	"github.com/scottcagno/hashmaps/pkg/container/array"
)

// Iterator walks the live entries of a HashMap in ascending bucket order.
// It cannot be restarted; once Next returns false it keeps returning false.
type Iterator[V any] struct {
	buckets *array.Array[*bucket[V]]
	index   int
	current *bucket[V]
}

// Iterator returns a new Iterator positioned before the first live entry
func (m *HashMap[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{
		buckets: m.buckets,
	}
}

// Next advances to the next live entry, skipping empty and tombstoned
// buckets. It reports whether there was one.
func (it *Iterator[V]) Next() bool {
	for it.index < it.buckets.Len() {
		b, err := it.buckets.GetAtIndex(it.index)
		common.ErrCheck(err)
		it.index++
		if b.state == live {
			it.current = b
			return true
		}
	}
	it.current = nil
	return false
}

// Key returns the key of the current entry
func (it *Iterator[V]) Key() string {
	if it.current == nil {
		return ""
	}
	return it.current.key
}

// Value returns the value of the current entry
func (it *Iterator[V]) Value() V {
	if it.current == nil {
		var zero V
		return zero
	}
	return it.current.val
}
