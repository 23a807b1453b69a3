package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TickInterval.Duration != 60*time.Second {
		t.Errorf("TickInterval = %v, want 60s", cfg.TickInterval.Duration)
	}
	if cfg.DefaultPlayerName != "Hero" {
		t.Errorf("DefaultPlayerName = %q, want %q", cfg.DefaultPlayerName, "Hero")
	}
	if cfg.DefaultTitle != "The Awakened" {
		t.Errorf("DefaultTitle = %q, want %q", cfg.DefaultTitle, "The Awakened")
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty (resolved lazily)", cfg.DBPath)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if cfg.DefaultPlayerName != "Hero" {
		t.Errorf("DefaultPlayerName = %q, want default", cfg.DefaultPlayerName)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
db_path = "/tmp/custom.db"
tick_interval = "5m"
default_player_name = "Michael"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.TickInterval.Duration != 5*time.Minute {
		t.Errorf("TickInterval = %v, want 5m", cfg.TickInterval.Duration)
	}
	if cfg.DefaultPlayerName != "Michael" {
		t.Errorf("DefaultPlayerName = %q", cfg.DefaultPlayerName)
	}
	// Unset keys keep their defaults.
	if cfg.DefaultTitle != "The Awakened" {
		t.Errorf("DefaultTitle = %q, want default kept", cfg.DefaultTitle)
	}
}

func TestLoadBrokenFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`tick_interval = "not a duration"`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("broken config accepted")
	}
}

func TestResolveDBPathExplicit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DBPath = "/tmp/explicit.db"
	got, err := cfg.ResolveDBPath()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "/tmp/explicit.db" {
		t.Errorf("ResolveDBPath = %q", got)
	}
}
