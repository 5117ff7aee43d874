package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pitchview/iplmetrics/internal/report"
)

var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Career summary for one player",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	engine, resolver, err := loadCore()
	if err != nil {
		return err
	}

	name, err := resolvePlayer(resolver, strings.Join(args, " "))
	if err != nil {
		return err
	}
	summary, err := engine.PlayerSummary(name)
	if err != nil {
		return err
	}
	report.PrintPlayerSummary(os.Stdout, summary)
	return nil
}
