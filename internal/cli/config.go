package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI defaults loaded from a TOML file. Flags override
// config values; config values override built-in defaults.
type Config struct {
	// DefaultPreset is the export preset used when --preset is omitted,
	// e.g. "2k-square".
	DefaultPreset string `toml:"default_preset"`
	// OutputDir is the directory exported files are written to when the
	// output path is relative.
	OutputDir string `toml:"output_dir"`
	// Tier overrides capability probing: "low", "medium", or "high".
	// Empty means probe normally.
	Tier string `toml:"tier"`
}

func defaultConfig() Config {
	return Config{DefaultPreset: "2k-square"}
}

// loadConfig reads TOML config from path, or from the default location
// ($XDG_CONFIG_HOME/strata/config.toml) when path is empty. A missing
// default-location file is not an error; a missing explicit path is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "strata", "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		return cfg, nil
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DefaultPreset == "" {
		cfg.DefaultPreset = defaultConfig().DefaultPreset
	}
	return cfg, nil
}

const configKey ctxKey = 1

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return defaultConfig()
}
