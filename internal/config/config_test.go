package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.PlayerMatchThreshold != 0.6 {
		t.Errorf("PlayerMatchThreshold = %v, want 0.6", cfg.PlayerMatchThreshold)
	}
	if cfg.MinBallsForStrikeRate != 60 {
		t.Errorf("MinBallsForStrikeRate = %d, want 60", cfg.MinBallsForStrikeRate)
	}
	if cfg.MinMatchesForWinPct != 10 {
		t.Errorf("MinMatchesForWinPct = %d, want 10", cfg.MinMatchesForWinPct)
	}
	if cfg.DefaultTopN != 5 {
		t.Errorf("DefaultTopN = %d, want 5", cfg.DefaultTopN)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "log_level: debug\ndb_path: /tmp/test.db\nmin_balls_for_strike_rate: 30\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.MinBallsForStrikeRate != 30 {
		t.Errorf("MinBallsForStrikeRate = %d, want 30", cfg.MinBallsForStrikeRate)
	}
	// Keys the file omits keep their defaults.
	if cfg.DefaultTopN != 5 {
		t.Errorf("DefaultTopN = %d, want default 5", cfg.DefaultTopN)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: /from/file.db\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("IPLMETRICS_DB_PATH", "/from/env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/from/env.db" {
		t.Errorf("DBPath = %q, want env value", cfg.DBPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadInvalidThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("player_match_threshold: 1.5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for out-of-range threshold")
	}
}
