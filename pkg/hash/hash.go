// Package hash provides the hash functions the hash maps can be built with.
// Every function is a pure mapping from a string key to a non-negative
// integer; reducing it to a bucket index is left to the map.
package hash

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

var ErrUnknownHash = errors.New("hash: unknown hash function")

// Func is a type definition for what a hash function should look like
type Func func(key string) uint64

// Sum adds up the code points of key. It clusters badly, which makes it
// useful for tests that need to pin exact bucket placement.
func Sum(key string) uint64 {
	var h uint64
	for _, r := range key {
		h += uint64(r)
	}
	return h
}

// Weighted adds up the code points of key, each multiplied by its one based
// position, so anagrams no longer collide.
func Weighted(key string) uint64 {
	var h uint64
	var i uint64
	for _, r := range key {
		i++
		h += i * uint64(r)
	}
	return h
}

// Murmur3 is the default hash function
func Murmur3(key string) uint64 {
	return murmur3.Sum64([]byte(key))
}

func XXH3(key string) uint64 {
	return xxh3.HashString(key)
}

func XXHash64(key string) uint64 {
	return xxhash.Sum64String(key)
}

var funcs = map[string]Func{
	"sum":      Sum,
	"weighted": Weighted,
	"murmur3":  Murmur3,
	"xxh3":     XXH3,
	"xxhash":   XXHash64,
}

// Default is the name of the hash function used when none is configured
const Default = "murmur3"

// Lookup returns the hash function registered under name (case insensitive)
func Lookup(name string) (Func, error) {
	fn, ok := funcs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHash, "%q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return fn, nil
}

// Names returns the registered hash function names in sorted order
func Names() []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
