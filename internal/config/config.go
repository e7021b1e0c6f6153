package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/meikuraledutech/nodegraph"
)

// Config holds nodegraph service configuration.
type Config struct {
	Graph   nodegraph.Config `toml:"graph"`
	History HistoryConfig    `toml:"history"`
	Server  ServerConfig     `toml:"server"`
	Store   StoreConfig      `toml:"store"`
	Log     LogConfig        `toml:"log"`
	Minimap MinimapConfig    `toml:"minimap"`
}

// HistoryConfig bounds the undo/redo stacks.
type HistoryConfig struct {
	Limit int `toml:"limit"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects the document backend.
type StoreConfig struct {
	Backend     string `toml:"backend"` // "file", "postgres"
	Dir         string `toml:"dir"`
	DatabaseURL string `toml:"database_url"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "text", "json"
}

// MinimapConfig sets the minimap pixel size and world padding.
type MinimapConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Padding float64 `toml:"padding"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Graph:   nodegraph.DefaultConfig(),
		History: HistoryConfig{Limit: 20},
		Server:  ServerConfig{Addr: ":3000"},
		Store:   StoreConfig{Backend: "file", Dir: filepath.Join(ConfigDir(), "graphs")},
		Log:     LogConfig{Level: "info", Format: "text"},
		Minimap: MinimapConfig{Width: 200, Height: 150, Padding: 50},
	}
}

// ConfigDir returns the nodegraph config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "nodegraph")
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads path on top of the defaults. A missing file yields the
// defaults; keys the file sets, zero caps included, are kept as written.
// DATABASE_URL overrides store.database_url.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Store.DatabaseURL = url
	}
	return cfg, cfg.Validate()
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if err := c.Graph.Validate(); err != nil {
		return err
	}
	switch c.Store.Backend {
	case "file":
		if c.Store.Dir == "" {
			return fmt.Errorf("config: store.dir is required for the file backend")
		}
	case "postgres":
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("config: store.database_url or DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown store backend %q", c.Store.Backend)
	}
	if c.Minimap.Width <= 0 || c.Minimap.Height <= 0 {
		return fmt.Errorf("config: minimap size must be positive")
	}
	return nil
}

// Save writes the configuration as TOML.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
