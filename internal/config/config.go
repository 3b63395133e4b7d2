// Package config resolves tool defaults from an optional TOML file and
// environment variables. Precedence, lowest to highest: built-ins,
// environment, config file; command-line flags override everything and
// are applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults a fit run starts from.
type Config struct {
	// Codec is the default output format (jpeg, webp, png).
	Codec string `toml:"codec"`
	// Target is the default byte budget as a human-readable size
	// (e.g. "100KB", "1.5MB"). Empty means the flag is required.
	Target string `toml:"target"`
	// OutDir is the default output directory.
	OutDir string `toml:"out_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Codec:  "jpeg",
		OutDir: ".",
	}
}

// Load resolves the configuration. path selects an explicit config
// file; when empty, ~/.imgfit.toml is used if it exists, and a missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if v := os.Getenv("IMGFIT_CODEC"); v != "" {
		cfg.Codec = v
	}
	if v := os.Getenv("IMGFIT_TARGET"); v != "" {
		cfg.Target = v
	}
	if v := os.Getenv("IMGFIT_OUT_DIR"); v != "" {
		cfg.OutDir = v
	}

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".imgfit.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
