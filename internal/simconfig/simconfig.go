// Package simconfig loads the optional TOML configuration file the
// CLI harness reads default flag values from. Every field has a
// sensible default so the harness runs with no config file present.
package simconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk shape of the harness's optional config file.
type Config struct {
	Scenario string `toml:"scenario"`
	Format   string `toml:"format"`
	LogFile  string `toml:"log_file"`
	Verbose  bool   `toml:"verbose"`
}

func defaults() Config {
	return Config{
		Scenario: "all",
		Format:   "text",
	}
}

// Load reads path and overlays it onto the defaults. A missing file
// is not an error: Load returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if cfg.Scenario == "" {
		cfg.Scenario = "all"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return cfg, nil
}
