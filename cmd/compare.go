package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pitchview/iplmetrics/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare <player> <player> [<player>...]",
	Short: "Compare career lines of two or more players",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	engine, resolver, err := loadCore()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(args))
	for _, arg := range args {
		name, err := resolvePlayer(resolver, arg)
		if err != nil {
			return err
		}
		names = append(names, name)
	}

	summaries, err := engine.ComparePlayers(names...)
	if err != nil {
		return err
	}
	report.PrintComparison(os.Stdout, summaries)
	return nil
}
