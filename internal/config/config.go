// Package config reads the optional application config file. Absent file
// or absent fields fall back to defaults; bloom runs with zero
// configuration out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/bloom/internal/constants"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Config struct {
	Storage StorageConfig `toml:"storage"`
	App     AppConfig     `toml:"app"`
}

type StorageConfig struct {
	// Backend selects the storage provider: "json" or "sqlite".
	Backend string `toml:"backend"`
	// Path overrides the storage file location.
	Path string `toml:"path"`
}

type AppConfig struct {
	// Timezone is the IANA timezone used for day boundaries, or "Local".
	Timezone string `toml:"timezone"`
	Debug    bool   `toml:"debug"`
}

// DefaultConfigDir returns the bloom config directory
// (typically ~/.config/bloom).
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, "bloom"), nil
}

func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
		},
		App: AppConfig{
			Timezone: constants.DefaultTimezone,
		},
	}
}

// Load reads the config file at path, layering it over defaults. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	switch cfg.Storage.Backend {
	case "", BackendJSON:
		cfg.Storage.Backend = BackendJSON
	case BackendSQLite:
	default:
		return cfg, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = constants.DefaultTimezone
	}

	return cfg, nil
}

// StoragePath resolves the storage file location for the configured
// backend, defaulting into configDir.
func (c Config) StoragePath(configDir string) string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == BackendSQLite {
		return filepath.Join(configDir, "bloom.db")
	}
	return filepath.Join(configDir, "bloom.json")
}
