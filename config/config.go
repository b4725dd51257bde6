// Package config loads client configuration.
//
// Sources, in order of precedence:
//  1. explicit path (--config);
//  2. CAMPUSKIT_CONFIG;
//  3. environment variables only.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the client settings.
type Config struct {
	// BaseURL is the API root every request is resolved against.
	BaseURL string `yaml:"base_url" env:"CAMPUSKIT_API_URL" env-default:"http://localhost:5000/api/v1"`
	// Timeout bounds each HTTP request.
	Timeout time.Duration `yaml:"timeout" env:"CAMPUSKIT_TIMEOUT" env-default:"30s"`
	// DataDir holds the durable client state (tokens, session
	// snapshot). Empty means the platform user config directory.
	DataDir string `yaml:"data_dir" env:"CAMPUSKIT_DATA_DIR"`
}

// Load reads configuration from the given path, or from the
// environment when path is empty and CAMPUSKIT_CONFIG is unset.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CAMPUSKIT_CONFIG")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.DataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving data directory: %w", err)
		}
		cfg.DataDir = filepath.Join(dir, "campuskit")
	}
	return &cfg, nil
}
