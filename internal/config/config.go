package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the app configuration, read from ~/.liferpg/config.toml. Every
// field has a working default; the file is optional.
type Config struct {
	// DBPath is the SQLite save database. Empty means ~/.liferpg/save.db.
	DBPath string `toml:"db_path"`

	// TickInterval is how often the TUI checks for a day rollover.
	TickInterval duration `toml:"tick_interval"`

	// DefaultPlayerName and DefaultTitle seed a fresh save.
	DefaultPlayerName string `toml:"default_player_name"`
	DefaultTitle      string `toml:"default_title"`
}

// duration lets TOML carry values like "60s" or "5m".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Dir returns the app's config/data directory.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".liferpg"), nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		TickInterval:      duration{60 * time.Second},
		DefaultPlayerName: "Hero",
		DefaultTitle:      "The Awakened",
	}
}

// Load reads the config file at path, or returns defaults when the file is
// absent. A present-but-broken file is an error; silently ignoring it would
// hide typos.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.TickInterval.Duration <= 0 {
		cfg.TickInterval = duration{60 * time.Second}
	}
	return cfg, nil
}

// ResolveDBPath returns the configured DB path, or the default under the
// app dir (creating the dir if needed).
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create app dir: %w", err)
	}
	return filepath.Join(dir, "save.db"), nil
}
