// Package sharded spreads keys over a power of two number of hash maps, each
// guarded by its own lock, so the maps can be shared between goroutines.
package sharded

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/scottcagno/hashmaps/pkg/hash"
	"github.com/scottcagno/hashmaps/pkg/hashmap"
)

// MapFunc builds the hash map backing a single shard
type MapFunc[V any] func(capacity int, fn hash.Func) hashmap.Map[V]

type shard[V any] struct {
	mu sync.RWMutex
	hm hashmap.Map[V]
}

type ShardedHashMap[V any] struct {
	mask   uint64
	hash   hash.Func
	shards []*shard[V]
}

// NewShardedHashMap returns a ShardedHashMap with at least the requested
// number of shards (rounded up to a power of two, 16 at minimum) sharing
// capacity between them. A nil hash function selects hash.Murmur3.
func NewShardedHashMap[V any](shards uint, capacity int, fn hash.Func, newMap MapFunc[V]) *ShardedHashMap[V] {
	shCount := alignShardCount(shards)
	if fn == nil {
		fn = hash.Murmur3
	}
	shm := &ShardedHashMap[V]{
		mask:   shCount - 1,
		hash:   fn,
		shards: make([]*shard[V], shCount),
	}
	hmSize := initialMapShardSize(capacity, shCount)
	log.Debug().
		Str("component", "sharded").
		Uint64("shards", shCount).
		Int("shard-capacity", hmSize).
		Msg("New sharded hashmap")
	for i := range shm.shards {
		shm.shards[i] = &shard[V]{
			hm: newMap(hmSize, fn),
		}
	}
	return shm
}

func alignShardCount(size uint) uint64 {
	count := uint(16)
	for count < size {
		count *= 2
	}
	return uint64(count)
}

func initialMapShardSize(capacity int, shards uint64) int {
	return max(capacity/int(shards), hashmap.DefaultMapSize)
}

func (s *ShardedHashMap[V]) getShard(key string) *shard[V] {
	// mask the hashkey to get the shard index
	return s.shards[s.hash(key)&s.mask]
}

func (s *ShardedHashMap[V]) Put(key string, val V) {
	sh := s.getShard(key)
	sh.mu.Lock()
	sh.hm.Put(key, val)
	sh.mu.Unlock()
}

func (s *ShardedHashMap[V]) Get(key string) (V, bool) {
	sh := s.getShard(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.hm.Get(key)
}

func (s *ShardedHashMap[V]) ContainsKey(key string) bool {
	sh := s.getShard(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.hm.ContainsKey(key)
}

func (s *ShardedHashMap[V]) Remove(key string) (V, bool) {
	sh := s.getShard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.hm.Remove(key)
}

// Update replaces the value under key with the result of fn, which receives
// the current value and whether it was present. The shard stays locked for
// the whole read-modify-write.
func (s *ShardedHashMap[V]) Update(key string, fn func(val V, ok bool) V) V {
	sh := s.getShard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	val := fn(sh.hm.Get(key))
	sh.hm.Put(key, val)
	return val
}

func (s *ShardedHashMap[V]) Len() int {
	var length int
	for _, sh := range s.shards {
		sh.mu.RLock()
		length += sh.hm.Len()
		sh.mu.RUnlock()
	}
	return length
}

// Cap returns the number of buckets over all shards
func (s *ShardedHashMap[V]) Cap() int {
	var capacity int
	for _, sh := range s.shards {
		sh.mu.RLock()
		capacity += sh.hm.Cap()
		sh.mu.RUnlock()
	}
	return capacity
}

func (s *ShardedHashMap[V]) EmptyBuckets() int {
	var empty int
	for _, sh := range s.shards {
		sh.mu.RLock()
		empty += sh.hm.EmptyBuckets()
		sh.mu.RUnlock()
	}
	return empty
}

// TableLoad returns the load over all shards combined
func (s *ShardedHashMap[V]) TableLoad() float64 {
	return float64(s.Len()) / float64(s.Cap())
}

// Range ranges every shard in turn while holding its read lock. The function
// must not call back into the ShardedHashMap.
func (s *ShardedHashMap[V]) Range(fn func(key string, val V) bool) {
	for _, sh := range s.shards {
		sh.mu.RLock()
		cont := true
		sh.hm.Range(func(key string, val V) bool {
			cont = fn(key, val)
			return cont
		})
		sh.mu.RUnlock()
		if !cont {
			return
		}
	}
}

// Stats returns the load factor of every shard
func (s *ShardedHashMap[V]) Stats() []float64 {
	stats := make([]float64, len(s.shards))
	for i, sh := range s.shards {
		sh.mu.RLock()
		stats[i] = sh.hm.TableLoad()
		sh.mu.RUnlock()
	}
	return stats
}
