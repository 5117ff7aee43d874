package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pitchview/iplmetrics/internal/report"
	"github.com/pitchview/iplmetrics/internal/resolve"
)

var venueCmd = &cobra.Command{
	Use:   "venue <name>",
	Short: "Aggregate record for one ground",
	Long: "Aggregate record for one ground. Nicknames work: " +
		"'iplmetrics venue wankhede' or 'iplmetrics venue chepauk'.",
	Args: cobra.MinimumNArgs(1),
	RunE: runVenue,
}

func runVenue(cmd *cobra.Command, args []string) error {
	engine, _, err := loadCore()
	if err != nil {
		return err
	}

	v, err := engine.VenueSummary(resolve.Venue(strings.Join(args, " ")))
	if err != nil {
		return err
	}
	report.PrintVenueSummary(os.Stdout, v)
	return nil
}
