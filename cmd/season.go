package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pitchview/iplmetrics/internal/report"
)

var seasonCmd = &cobra.Command{
	Use:   "season [year]",
	Short: "Season overview: champion, top venue, Orange and Purple Cap",
	Long: "Season overview for one year, or a table across every imported " +
		"season when no year is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: runSeason,
}

func runSeason(cmd *cobra.Command, args []string) error {
	engine, _, err := loadCore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		summaries, err := engine.AllSeasonSummaries()
		if err != nil {
			return err
		}
		report.PrintSeasonSummaries(os.Stdout, summaries)
		return nil
	}

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid season %q: want a year like 2016", args[0])
	}
	s, err := engine.SeasonSummary(year)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\n%s", report.RenderSeasonSummary(s))
	return nil
}
