package chained

import (
	"github.com/scottcagno/hashmaps/pkg/common"
	"github.com/scottcagno/hashmaps/pkg/container/array"
	"github.com/scottcagno/hashmaps/pkg/container/chain"
)

// Iterator walks every entry of a HashMap, bucket by bucket and in insertion
// order within a bucket. It cannot be restarted.
type Iterator[V any] struct {
	buckets *array.Array[*chain.Chain[V]]
	index   int
	nodes   *chain.Iterator[V]
	current *chain.Node[V]
}

// Iterator returns a new Iterator positioned before the first entry
func (m *HashMap[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{
		buckets: m.buckets,
	}
}

// Next advances to the next entry and reports whether there was one
func (it *Iterator[V]) Next() bool {
	for {
		if it.nodes != nil && it.nodes.Next() {
			it.current = it.nodes.Node()
			return true
		}
		if it.index >= it.buckets.Len() {
			it.nodes = nil
			it.current = nil
			return false
		}
		b, err := it.buckets.GetAtIndex(it.index)
		common.ErrCheck(err)
		it.index++
		it.nodes = b.Iterator()
	}
}

// Key returns the key of the current entry
func (it *Iterator[V]) Key() string {
	if it.current == nil {
		return ""
	}
	return it.current.Key
}

// Value returns the value of the current entry
func (it *Iterator[V]) Value() V {
	if it.current == nil {
		var zero V
		return zero
	}
	return it.current.Value
}
