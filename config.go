package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/b97tsk/idscan/internal/repeat"
)

const _envPrefix = "IDSCAN"

const (
	_formatText = "text"
	_formatYAML = "yaml"
	_formatJSON = "json"
)

type config struct {
	File      string
	Format    string
	Workers   int
	ChunkSize uint64
	LogLevel  string
}

// bindFlags registers the persistent flags on flags and binds every one of
// them into v, so a value can come from a flag, an IDSCAN_* environment
// variable, the config file, or the default, in that order.
func bindFlags(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.StringP("file", "f", "", "input file, stdin when empty or -")
	flags.StringP("format", "o", _formatText, "output format: text, yaml or json")
	flags.IntP("workers", "w", 1, "number of goroutines scanning ranges")
	flags.Uint64("chunk-size", repeat.DefaultChunkSize, "identifiers handed to a scanning goroutine at a time")
	flags.String("log-level", _levelWarn, "log level: debug, info, warn or error")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func loadConfig(v *viper.Viper) (c config, err error) {
	if name := v.GetString("config"); name != "" {
		v.SetConfigFile(name)
		if err = v.ReadInConfig(); err != nil {
			return c, errors.Wrapf(err, "reading config file %s", name)
		}
	}

	c = config{
		File:      v.GetString("file"),
		Format:    strings.ToLower(v.GetString("format")),
		Workers:   v.GetInt("workers"),
		ChunkSize: v.GetUint64("chunk-size"),
		LogLevel:  strings.ToLower(v.GetString("log-level")),
	}

	switch c.Format {
	case _formatText, _formatYAML, _formatJSON:
	default:
		return c, errors.Errorf("unknown output format %q", c.Format)
	}
	if c.Workers < 1 {
		return c, errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, ok := _levels[c.LogLevel]; !ok {
		return c, errors.Errorf("unknown log level %q", c.LogLevel)
	}
	return c, nil
}
