// Package hashmaps builds string keyed hash maps using either open addressing
// with quadratic probing or separate chaining.
package hashmaps

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/scottcagno/hashmaps/pkg/hash"
	"github.com/scottcagno/hashmaps/pkg/hashmap"
	"github.com/scottcagno/hashmaps/pkg/hashmap/chained"
	"github.com/scottcagno/hashmaps/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashmaps/pkg/hashmap/sharded"
)

var ErrUnknownStrategy = errors.New("unknown collision strategy")

// Strategy selects how hash collisions are resolved
type Strategy string

const (
	OpenAddr Strategy = "openaddr"
	Chained  Strategy = "chained"
)

// UnmarshalText lets configuration decoders parse a Strategy by name
func (s *Strategy) UnmarshalText(text []byte) error {
	switch v := Strategy(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case OpenAddr, Chained:
		*s = v
		return nil
	case "":
		*s = ""
		return nil
	default:
		return errors.Wrapf(ErrUnknownStrategy, "%q", string(text))
	}
}

func (s Strategy) String() string {
	return string(s)
}

// Config describes the map New builds. Shards is only used by NewSharded.
type Config struct {
	Strategy Strategy `mapstructure:"strategy"`
	Capacity int      `mapstructure:"capacity"`
	Hash     string   `mapstructure:"hash"`
	Shards   uint     `mapstructure:"shards"`
}

// CheckConfig fills in defaults for any unset field and returns the config
func (c *Config) CheckConfig() *Config {
	if c.Strategy == "" {
		c.Strategy = Chained
	}
	if c.Capacity == 0 {
		c.Capacity = hashmap.DefaultMapSize
	}
	if c.Hash == "" {
		c.Hash = hash.Default
	}
	return c
}

// mapFunc returns the constructor for the map the strategy names
func mapFunc[V any](strategy Strategy) (sharded.MapFunc[V], error) {
	switch strategy {
	case OpenAddr:
		return func(capacity int, fn hash.Func) hashmap.Map[V] {
			return openaddr.NewHashMap[V](capacity, fn)
		}, nil
	case Chained:
		return func(capacity int, fn hash.Func) hashmap.Map[V] {
			return chained.NewHashMap[V](capacity, fn)
		}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", strategy)
	}
}

// New returns an empty map built as conf describes. A nil conf uses the defaults.
func New[V any](conf *Config) (hashmap.Map[V], error) {
	if conf == nil {
		conf = new(Config)
	}
	conf.CheckConfig()
	fn, err := hash.Lookup(conf.Hash)
	if err != nil {
		return nil, err
	}
	newMap, err := mapFunc[V](conf.Strategy)
	if err != nil {
		return nil, err
	}
	return newMap(conf.Capacity, fn), nil
}

// NewSharded returns a ShardedHashMap with conf.Shards shards, each built as
// conf describes. The capacity is shared between the shards.
func NewSharded[V any](conf *Config) (*sharded.ShardedHashMap[V], error) {
	if conf == nil {
		conf = new(Config)
	}
	conf.CheckConfig()
	fn, err := hash.Lookup(conf.Hash)
	if err != nil {
		return nil, err
	}
	newMap, err := mapFunc[V](conf.Strategy)
	if err != nil {
		return nil, err
	}
	return sharded.NewShardedHashMap[V](conf.Shards, conf.Capacity, fn, newMap), nil
}
