// Package chain provides the ordered, singly linked key value list that backs
// each bucket of the separate chaining hash map.
package chain

import (
	"iter"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// Node is a key value pair owned by a Chain. Value may be updated in place.
type Node[V any] struct {
	Key   string
	Value V
}

// Chain is an ordered sequence of nodes, kept in insertion order
type Chain[V any] struct {
	list *singlylinkedlist.List
}

// New returns an empty chain
func New[V any]() *Chain[V] {
	return &Chain[V]{
		list: singlylinkedlist.New(),
	}
}

// Insert appends a new node holding key and val and returns it. It does not
// check for an existing node with the same key.
func (c *Chain[V]) Insert(key string, val V) *Node[V] {
	n := &Node[V]{Key: key, Value: val}
	c.list.Append(n)
	return n
}

// find returns the position and node matching key, or -1 and nil
func (c *Chain[V]) find(key string) (int, *Node[V]) {
	i, v := c.list.Find(func(_ int, v interface{}) bool {
		return v.(*Node[V]).Key == key
	})
	if i < 0 {
		return -1, nil
	}
	return i, v.(*Node[V])
}

// Contains returns the node matching key, or nil if there is none
func (c *Chain[V]) Contains(key string) *Node[V] {
	_, n := c.find(key)
	return n
}

// Remove unlinks the node matching key. It reports whether a node was removed.
func (c *Chain[V]) Remove(key string) bool {
	i, _ := c.find(key)
	if i < 0 {
		return false
	}
	c.list.Remove(i)
	return true
}

// Len returns the number of nodes in the chain
func (c *Chain[V]) Len() int {
	return c.list.Size()
}

// Iterator walks the nodes of a chain in insertion order
type Iterator[V any] struct {
	it singlylinkedlist.Iterator
}

// Iterator returns an Iterator positioned before the first node
func (c *Chain[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{
		it: c.list.Iterator(),
	}
}

// Next advances to the next node and reports whether there was one
func (i *Iterator[V]) Next() bool {
	return i.it.Next()
}

// Node returns the current node
func (i *Iterator[V]) Node() *Node[V] {
	return i.it.Value().(*Node[V])
}

// Range calls fn for each node in insertion order until fn returns false
func (c *Chain[V]) Range(fn func(n *Node[V]) bool) {
	it := c.Iterator()
	for it.Next() {
		if !fn(it.Node()) {
			return
		}
	}
}

// Nodes returns an iterator over the nodes of the chain in insertion order
func (c *Chain[V]) Nodes() iter.Seq[*Node[V]] {
	return func(yield func(*Node[V]) bool) {
		c.Range(yield)
	}
}
