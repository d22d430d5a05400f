package array

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_Append(t *testing.T) {
	a := New[string]()
	assert.Equal(t, 0, a.Len())
	a.Append("a")
	a.Append("b")
	a.Append("c")
	assert.Equal(t, 3, a.Len())

	v, err := a.GetAtIndex(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestArray_Filled(t *testing.T) {
	n := 0
	a := Filled(5, func() *int {
		n++
		v := n
		return &v
	})
	assert.Equal(t, 5, a.Len())
	for i := 0; i < a.Len(); i++ {
		v, err := a.GetAtIndex(i)
		require.NoError(t, err)
		assert.Equal(t, i+1, *v)
	}

	b := Filled[*int](3, nil)
	assert.Equal(t, 3, b.Len())
	v, err := b.GetAtIndex(2)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestArray_SetAtIndex(t *testing.T) {
	a := Filled[int](4, nil)
	require.NoError(t, a.SetAtIndex(0, 10))
	require.NoError(t, a.SetAtIndex(3, 40))

	v, err := a.GetAtIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	v, err = a.GetAtIndex(3)
	require.NoError(t, err)
	assert.Equal(t, 40, v)
	assert.Equal(t, 4, a.Len())
}

func TestArray_OutOfBounds(t *testing.T) {
	a := Filled[int](2, nil)
	for _, i := range []int{-1, 2, 100} {
		_, err := a.GetAtIndex(i)
		assert.True(t, errors.Is(err, ErrIndexOutOfBounds), "get %d", i)

		err = a.SetAtIndex(i, 1)
		assert.True(t, errors.Is(err, ErrIndexOutOfBounds), "set %d", i)
	}
	// a failed set must not grow the array
	assert.Equal(t, 2, a.Len())
}

func TestArray_NilInterface(t *testing.T) {
	a := New[any]()
	a.Append(nil)
	v, err := a.GetAtIndex(0)
	require.NoError(t, err)
	assert.Nil(t, v)
}
