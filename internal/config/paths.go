package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "cross"

// Dir returns the directory holding the cross config file. The
// CROSS_CONFIG_DIR environment variable overrides the XDG default.
func Dir() string {
	if v := os.Getenv("CROSS_CONFIG_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// File returns the path of the config file.
func File() string {
	return filepath.Join(Dir(), "config.toml")
}
