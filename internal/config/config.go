// Package config loads the cross config file. File values provide defaults
// for the console flags and the engine checks; command-line flags always
// win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// OutputConfig holds file-level defaults for the console flags.
type OutputConfig struct {
	// Color is "always", "never", or "auto". Empty means unset.
	Color   string `toml:"color"`
	Verbose bool   `toml:"verbose"`
	Quiet   bool   `toml:"quiet"`
}

// EngineConfig configures container engine detection.
type EngineConfig struct {
	// Name pins detection to a single engine binary ("docker" or
	// "podman"). Empty tries the known engines in order.
	Name string `toml:"name"`
	// MinimumVersion is the lowest engine version doctor accepts,
	// e.g. "20.10.0". Empty disables the gate.
	MinimumVersion string `toml:"minimum_version"`
}

// Config is the on-disk configuration of cross.
type Config struct {
	Output OutputConfig `toml:"output"`
	Engine EngineConfig `toml:"engine"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{}
}

// Load reads the config file, returning defaults when the file does not
// exist. A malformed file is an error; the caller decides whether that is
// fatal.
func Load() (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(File(), &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("parsing %s: %w", File(), err)
	}
	return cfg, nil
}
