package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pitchview/iplmetrics/internal/dataset"
)

var (
	importMatchCSV string
	importBallCSV  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the match and ball-by-ball CSV files into the local database",
	Args:  cobra.NoArgs,
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importMatchCSV, "matches", "", "path to the match-level CSV (default from config)")
	importCmd.Flags().StringVar(&importBallCSV, "balls", "", "path to the ball-by-ball CSV (default from config)")
}

func runImport(cmd *cobra.Command, args []string) error {
	matchCSV := importMatchCSV
	if matchCSV == "" {
		matchCSV = cfg.MatchCSV
	}
	ballCSV := importBallCSV
	if ballCSV == "" {
		ballCSV = cfg.BallCSV
	}

	log.Info("importing dataset",
		zap.String("matches", matchCSV),
		zap.String("balls", ballCSV))

	table, err := dataset.LoadCSV(matchCSV, ballCSV)
	if err != nil {
		return fmt.Errorf("load csv: %w", err)
	}

	store, err := dataset.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer store.Close()

	if err := store.ImportTable(table); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	seasons := table.Seasons()
	fmt.Fprintf(os.Stdout, "Imported %d matches, %d deliveries, %d players",
		len(table.Matches()), len(table.Deliveries()), len(table.Players()))
	if len(seasons) > 0 {
		fmt.Fprintf(os.Stdout, " (%d-%d)", seasons[0], seasons[len(seasons)-1])
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
