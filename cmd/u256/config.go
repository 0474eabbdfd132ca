package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// config holds defaults for the global flags. Flags given on the command
// line win over the file.
//
//	upper = true
//	prefix = false
//	fixed = true
//	decimals = 6
type config struct {
	Upper    bool `toml:"upper"`
	Prefix   bool `toml:"prefix"`
	Fixed    bool `toml:"fixed"`
	Decimals int  `toml:"decimals"`

	meta toml.MetaData
}

func loadConfig(path string) (config, error) {
	var cfg config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, errors.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("decimals") && cfg.Decimals < 0 {
		return config{}, errors.Errorf("%s: decimals must not be negative", path)
	}
	cfg.meta = meta
	return cfg, nil
}

func (cfg config) apply(a *app, flags *pflag.FlagSet) {
	if cfg.meta.IsDefined("upper") && !flags.Changed("upper") {
		a.upper = cfg.Upper
	}
	if cfg.meta.IsDefined("prefix") && !flags.Changed("no-prefix") {
		a.noPrefix = !cfg.Prefix
	}
	if cfg.meta.IsDefined("fixed") && !flags.Changed("fixed") {
		a.fixed = cfg.Fixed
	}
	if cfg.meta.IsDefined("decimals") && !flags.Changed("decimals") {
		a.decimals = cfg.Decimals
	}
}
