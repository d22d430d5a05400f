package chain

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(n int) *Chain[[]byte] {
	c := New[[]byte]()
	for i := 1; i <= n; i++ {
		s := strconv.Itoa(i)
		c.Insert(s, []byte(s))
	}
	return c
}

func TestChain_Insert(t *testing.T) {
	c := New[[]byte]()
	n := c.Insert("1", []byte("1"))
	require.NotNil(t, n)
	assert.Equal(t, "1", n.Key)
	assert.Equal(t, []byte("1"), n.Value)

	c.Insert("2", []byte("2"))
	c.Insert("3", []byte("3"))
	assert.Equal(t, 3, c.Len())
}

func TestChain_Contains(t *testing.T) {
	c := fill(5)

	n := c.Contains("3")
	require.NotNil(t, n)
	assert.Equal(t, []byte("3"), n.Value)

	n = c.Contains("1")
	require.NotNil(t, n)
	assert.Equal(t, []byte("1"), n.Value)

	assert.Nil(t, c.Contains("6"))
	assert.Nil(t, New[int]().Contains("x"))

	// updates through the returned node are visible to later lookups
	c.Contains("5").Value = []byte("five")
	assert.Equal(t, []byte("five"), c.Contains("5").Value)
}

func TestChain_Remove(t *testing.T) {
	c := fill(5)

	assert.True(t, c.Remove("1"))
	assert.True(t, c.Remove("3"))
	assert.True(t, c.Remove("5"))
	assert.False(t, c.Remove("5"))
	assert.False(t, c.Remove("nope"))
	assert.Equal(t, 2, c.Len())

	var keys []string
	for n := range c.Nodes() {
		keys = append(keys, n.Key)
	}
	assert.Equal(t, []string{"2", "4"}, keys)

	assert.True(t, c.Remove("2"))
	assert.True(t, c.Remove("4"))
	assert.Equal(t, 0, c.Len())
	assert.False(t, New[int]().Remove("x"))
}

func TestChain_Range(t *testing.T) {
	c := fill(5)

	var keys []string
	c.Range(func(n *Node[[]byte]) bool {
		keys = append(keys, n.Key)
		return true
	})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, keys)

	var count int
	c.Range(func(n *Node[[]byte]) bool {
		count++
		return n.Key != "2"
	})
	assert.Equal(t, 2, count)
}

func TestChain_Iterator(t *testing.T) {
	it := New[int]().Iterator()
	assert.False(t, it.Next())

	c := fill(3)
	it = c.Iterator()
	var keys []string
	for it.Next() {
		keys = append(keys, it.Node().Key)
	}
	assert.Equal(t, []string{"1", "2", "3"}, keys)
	assert.False(t, it.Next())
}
