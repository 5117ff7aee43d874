// Package config loads process configuration by layering defaults, an
// optional YAML file, and environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all tunables for the CLI and the core.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DBPath is the SQLite cache of the merged dataset.
	DBPath string `koanf:"db_path"`

	// MatchCSV and BallCSV are the raw dataset files consumed by `import`.
	MatchCSV string `koanf:"match_csv"`
	BallCSV  string `koanf:"ball_csv"`

	// PlayerMatchThreshold is the minimum similarity ratio (0-1) for the
	// fuzzy player resolver to accept a match.
	PlayerMatchThreshold float64 `koanf:"player_match_threshold"`

	// MinBallsForStrikeRate and MinMatchesForWinPct are the sample floors
	// for rate-based leaderboards.
	MinBallsForStrikeRate int `koanf:"min_balls_for_strike_rate"`
	MinMatchesForWinPct   int `koanf:"min_matches_for_win_pct"`

	// DefaultTopN sizes filtered leaderboards when the query gives no N.
	DefaultTopN int `koanf:"default_top_n"`
}

// Default returns the baseline configuration.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		LogLevel:              "info",
		DBPath:                filepath.Join(home, ".iplmetrics", "ipl.db"),
		MatchCSV:              "ipl_dataset/matches.csv",
		BallCSV:               "ipl_dataset/deliveries.csv",
		PlayerMatchThreshold:  0.6,
		MinBallsForStrikeRate: 60,
		MinMatchesForWinPct:   10,
		DefaultTopN:           5,
	}
}

// Load builds a Config by layering (low -> high):
//  1. defaults
//  2. YAML file, if IPLMETRICS_CONFIG or the path argument is set
//  3. env vars with prefix IPLMETRICS_ (IPLMETRICS_DB_PATH -> db_path)
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("IPLMETRICS_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("IPLMETRICS_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "iplmetrics_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.PlayerMatchThreshold <= 0 || cfg.PlayerMatchThreshold > 1 {
		return nil, errors.New("player_match_threshold must be in (0, 1]")
	}
	if cfg.DefaultTopN <= 0 {
		return nil, errors.New("default_top_n must be positive")
	}
	return &cfg, nil
}
