package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pitchview/iplmetrics/internal/config"
	"github.com/pitchview/iplmetrics/internal/dataset"
	"github.com/pitchview/iplmetrics/internal/resolve"
	"github.com/pitchview/iplmetrics/internal/stats"
)

var (
	cfgPath string
	dbPath  string

	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "iplmetrics",
	Short: "IPL ball-by-ball statistics tool",
	Long:  "Import IPL ball-by-ball data and answer statistical questions about players, teams, venues, and seasons.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		log, err = newLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (overrides config)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(venueCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(pairCmd)
	rootCmd.AddCommand(playoffCmd)
	rootCmd.AddCommand(sqlCmd)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// loadCore reads the stored dataset and builds the engine and resolver all
// query commands share. The store is closed before returning; everything
// downstream works on the in-memory table.
func loadCore() (*stats.Engine, *resolve.Resolver, error) {
	store, err := dataset.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset: %w", err)
	}
	defer store.Close()

	ok, err := store.HasData()
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, fmt.Errorf("no data imported yet; run 'iplmetrics import' first")
	}

	table, err := store.LoadTable()
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}
	log.Debug("dataset loaded",
		zap.Int("matches", len(table.Matches())),
		zap.Int("deliveries", len(table.Deliveries())),
		zap.Int("players", len(table.Players())))

	engine := stats.NewEngine(table, stats.Floors{
		MinBallsForStrikeRate: cfg.MinBallsForStrikeRate,
		MinMatchesForWinPct:   cfg.MinMatchesForWinPct,
	})
	resolver := resolve.New(table.Players(), cfg.PlayerMatchThreshold)
	return engine, resolver, nil
}

// resolvePlayer wraps the resolver with a user-facing error for CLI commands.
func resolvePlayer(resolver *resolve.Resolver, input string) (string, error) {
	name, ok := resolver.Player(input)
	if !ok {
		return "", fmt.Errorf("no player matching %q in the dataset", input)
	}
	return name, nil
}
