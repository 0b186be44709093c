package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig carries the routing defaults a --config TOML file may set.
// Explicit command-line flags always take precedence over these values.
// Reach is a pointer because zero is a meaningful reach.
type fileConfig struct {
	Algo      string `toml:"algo"`
	OutputDir string `toml:"output_dir"`
	Reach     *int   `toml:"reach"`
	Axis      string `toml:"axis"`
}

// loadConfig reads and decodes one TOML config file.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg fileConfig
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// withConfig returns a new context with the loaded configuration attached.
func withConfig(ctx context.Context, cfg *fileConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the loaded configuration from ctx. Commands
// always get a non-nil value; without --config every field stays zero.
func configFromContext(ctx context.Context) *fileConfig {
	if cfg, ok := ctx.Value(configKey).(*fileConfig); ok && cfg != nil {
		return cfg
	}
	return &fileConfig{}
}
