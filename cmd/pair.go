package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pitchview/iplmetrics/internal/report"
)

var pairSeason int

var pairCmd = &cobra.Command{
	Use:   "pair <player> <player>",
	Short: "Partnership record for two batters at the crease together",
	Args:  cobra.ExactArgs(2),
	RunE:  runPair,
}

func init() {
	pairCmd.Flags().IntVar(&pairSeason, "season", 0, "restrict to one season (0 = all)")
}

func runPair(cmd *cobra.Command, args []string) error {
	engine, resolver, err := loadCore()
	if err != nil {
		return err
	}

	p1, err := resolvePlayer(resolver, args[0])
	if err != nil {
		return err
	}
	p2, err := resolvePlayer(resolver, args[1])
	if err != nil {
		return err
	}

	p, err := engine.PairStats(p1, p2, pairSeason)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\n%s", report.RenderPairStats(p))
	return nil
}
