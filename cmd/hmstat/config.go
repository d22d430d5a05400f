package main

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scottcagno/hashmaps"
	"github.com/scottcagno/hashmaps/pkg/hash"
	"github.com/scottcagno/hashmaps/pkg/hashmap"
)

// configFlags registers the flags that make up a hashmaps.Config
func configFlags(cmd *cobra.Command, configFile *string) {
	cmd.Flags().String("strategy", string(hashmaps.Chained), "Collision strategy: openaddr or chained")
	cmd.Flags().Int("capacity", hashmap.DefaultMapSize, "Initial capacity, rounded up to a prime")
	cmd.Flags().String("hash", hash.Default, "Hash function: "+strings.Join(hash.Names(), ", "))
	cmd.Flags().Uint("shards", 0, "Count files concurrently into a map split over this many shards (0 disables)")
	cmd.Flags().StringVarP(configFile, "conf", "f", "", "Optional YAML config file")
}

// loadConfig resolves the map config from, in order of precedence, the flags
// set on the command line, HMSTAT_* environment variables, the config file
// and the flag defaults.
func loadConfig(cmd *cobra.Command, configFile string) (*hashmaps.Config, error) {
	v := viper.New()
	v.SetEnvPrefix("hmstat")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, name := range []string{"strategy", "capacity", "hash", "shards"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return nil, errors.Wrapf(err, "binding flag %s", name)
		}
	}

	if configFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", configFile)
		}
	}

	conf := &hashmaps.Config{}
	if err := v.Unmarshal(conf, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return conf.CheckConfig(), nil
}
