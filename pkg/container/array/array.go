// Package array provides the bucket store used by the hash maps: a growable,
// typed array with bounds checked random access.
package array

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/pkg/errors"
)

var ErrIndexOutOfBounds = errors.New("array: index out of bounds")

// Array is a growable array of T. It is not safe for concurrent use.
type Array[T any] struct {
	list *arraylist.List
}

// New returns an empty Array
func New[T any]() *Array[T] {
	return &Array[T]{
		list: arraylist.New(),
	}
}

// Filled returns an Array of length n where every element is produced by
// calling fill. A nil fill leaves every element as the zero value of T.
func Filled[T any](n int, fill func() T) *Array[T] {
	a := New[T]()
	var zero T
	for i := 0; i < n; i++ {
		if fill == nil {
			a.list.Add(zero)
			continue
		}
		a.list.Add(fill())
	}
	return a
}

// Append adds item to the end of the array
func (a *Array[T]) Append(item T) {
	a.list.Add(item)
}

// GetAtIndex returns the element at index i. An index outside of [0, Len())
// returns ErrIndexOutOfBounds.
func (a *Array[T]) GetAtIndex(i int) (T, error) {
	v, ok := a.list.Get(i)
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "get index %d, length %d", i, a.list.Size())
	}
	// comma ok keeps a stored nil interface from panicking
	item, _ := v.(T)
	return item, nil
}

// SetAtIndex overwrites the element at index i. An index outside of
// [0, Len()) returns ErrIndexOutOfBounds and leaves the array untouched.
func (a *Array[T]) SetAtIndex(i int, item T) error {
	if i < 0 || i >= a.list.Size() {
		return errors.Wrapf(ErrIndexOutOfBounds, "set index %d, length %d", i, a.list.Size())
	}
	a.list.Set(i, item)
	return nil
}

// Len returns the number of elements in the array
func (a *Array[T]) Len() int {
	return a.list.Size()
}
