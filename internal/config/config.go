// Package config loads the optional project file a compilation may be run
// with (spec SPEC_FULL.md §10 "Configuration"). CLI flags always take
// precedence over anything set here; a missing file is not an error.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the set of knobs a .sourcecc.toml file may override.
type Config struct {
	// Color forces diagnostic colorization on or off; nil leaves the
	// driver's terminal auto-detection in charge.
	Color *bool `toml:"color"`
	// Roots lists additional source search-path roots, for a project that
	// spans more than one file.
	Roots []string `toml:"roots"`
}

// Load reads path and decodes it as TOML. A missing file returns a zero
// Config and a nil error, since project configuration is always optional.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// ColorEnabled reports whether cfg forces color on/off, and whether it
// expressed an opinion at all.
func (c Config) ColorEnabled() (enabled bool, set bool) {
	if c.Color == nil {
		return false, false
	}
	return *c.Color, true
}
