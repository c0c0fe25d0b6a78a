package config

import (
	"github.com/arthur-debert/braces/pkg/braces"
	"github.com/arthur-debert/braces/pkg/errors"
	"github.com/arthur-debert/braces/pkg/highlight"
	"github.com/arthur-debert/braces/pkg/ui"
)

// Config is the effective configuration of a braces invocation.
type Config struct {
	Compress braces.Config `koanf:"compress" toml:"compress" yaml:"compress"`
	Output   OutputConfig  `koanf:"output" toml:"output" yaml:"output"`
	Input    InputConfig   `koanf:"input" toml:"input" yaml:"input"`
}

// OutputConfig controls how the result is printed.
type OutputConfig struct {
	Color   string   `koanf:"color" toml:"color" yaml:"color"`
	Pretty  bool     `koanf:"pretty" toml:"pretty" yaml:"pretty"`
	Quote   bool     `koanf:"quote" toml:"quote" yaml:"quote"`
	Palette []string `koanf:"palette" toml:"palette" yaml:"palette"`
}

// InputConfig controls how paths are read from stdin.
type InputConfig struct {
	NullData bool `koanf:"null_data" toml:"null_data" yaml:"null_data"`
	Groups   bool `koanf:"groups" toml:"groups" yaml:"groups"`
	Workers  int  `koanf:"workers" toml:"workers" yaml:"workers"`
}

// ColorMode parses Output.Color. Validate guarantees it succeeds.
func (c *Config) ColorMode() ui.ColorMode {
	mode, _ := ui.ParseColorMode(c.Output.Color)
	return mode
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	nonNegative := []struct {
		key   string
		value int
	}{
		{"compress.max_depth", c.Compress.MaxDepth},
		{"compress.max_brace_size", c.Compress.MaxBraceSize},
		{"input.workers", c.Input.Workers},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return invalid(f.key, "must not be negative, got %d", f.value)
		}
	}

	if _, err := ui.ParseColorMode(c.Output.Color); err != nil {
		return invalid("output.color", "%v", err)
	}

	for _, name := range c.Output.Palette {
		if _, err := highlight.ParseColor(name); err != nil {
			return invalid("output.palette", "%v", err)
		}
	}

	return nil
}

func invalid(key, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrConfigValid, "invalid "+key+": "+format, args...).
		WithDetail("key", key)
}
