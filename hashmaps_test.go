package hashmaps

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/hashmaps/pkg/hash"
	"github.com/scottcagno/hashmaps/pkg/hashmap"
	"github.com/scottcagno/hashmaps/pkg/hashmap/chained"
	"github.com/scottcagno/hashmaps/pkg/hashmap/openaddr"
)

func TestConfig_CheckConfig(t *testing.T) {
	conf := (&Config{}).CheckConfig()
	assert.Equal(t, Chained, conf.Strategy)
	assert.Equal(t, hashmap.DefaultMapSize, conf.Capacity)
	assert.Equal(t, hash.Default, conf.Hash)

	conf = (&Config{Strategy: OpenAddr, Capacity: 53, Hash: "sum"}).CheckConfig()
	assert.Equal(t, OpenAddr, conf.Strategy)
	assert.Equal(t, 53, conf.Capacity)
	assert.Equal(t, "sum", conf.Hash)
}

func TestStrategy_UnmarshalText(t *testing.T) {
	var s Strategy
	require.NoError(t, s.UnmarshalText([]byte(" OpenAddr ")))
	assert.Equal(t, OpenAddr, s)
	require.NoError(t, s.UnmarshalText([]byte("chained")))
	assert.Equal(t, Chained, s)

	err := s.UnmarshalText([]byte("cuckoo"))
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
	assert.Equal(t, Chained, s)
}

func TestNew(t *testing.T) {
	m, err := New[int](nil)
	require.NoError(t, err)
	assert.IsType(t, &chained.HashMap[int]{}, m)
	assert.Equal(t, 11, m.Cap())

	m, err = New[int](&Config{Strategy: OpenAddr, Capacity: 20, Hash: "xxh3"})
	require.NoError(t, err)
	assert.IsType(t, &openaddr.HashMap[int]{}, m)
	assert.Equal(t, 23, m.Cap())

	_, err = New[int](&Config{Hash: "md5"})
	assert.True(t, errors.Is(err, hash.ErrUnknownHash))

	_, err = New[int](&Config{Strategy: "cuckoo"})
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}

// Both strategies must agree on every observable property of the contract
func TestNew_Contract(t *testing.T) {
	for _, strategy := range []Strategy{OpenAddr, Chained} {
		t.Run(strategy.String(), func(t *testing.T) {
			m, err := New[string](&Config{Strategy: strategy, Capacity: 20, Hash: "weighted"})
			require.NoError(t, err)
			assert.Equal(t, 23, m.Cap())

			m.Put("key1", "a")
			m.Put("key2", "b")
			m.Put("key1", "c")
			assert.Equal(t, 2, m.Len())
			v, ok := m.Get("key1")
			assert.True(t, ok)
			assert.Equal(t, "c", v)

			_, ok = m.Remove("key2")
			assert.True(t, ok)
			assert.False(t, m.ContainsKey("key2"))
			_, ok = m.Get("key2")
			assert.False(t, ok)
			assert.Equal(t, []hashmap.Pair[string]{{Key: "key1", Value: "c"}}, m.KeysAndValues())

			m.ResizeTable(30)
			assert.Equal(t, 31, m.Cap())
			assert.True(t, m.ContainsKey("key1"))

			m.Clear()
			assert.Equal(t, 0, m.Len())
			assert.Equal(t, 31, m.Cap())
			assert.Equal(t, 31, m.EmptyBuckets())
		})
	}
}

func TestNewSharded(t *testing.T) {
	shm, err := NewSharded[int](&Config{Strategy: OpenAddr, Capacity: 1024, Shards: 20})
	require.NoError(t, err)
	// 32 shards of 1024/32 = 32, rounded up to 37
	assert.Equal(t, 32*37, shm.Cap())
	shm.Put("key1", 1)
	v, ok := shm.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, err = NewSharded[int](&Config{Strategy: "cuckoo"})
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
	_, err = NewSharded[int](&Config{Hash: "md5"})
	assert.True(t, errors.Is(err, hash.ErrUnknownHash))
}
