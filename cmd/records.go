package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pitchview/iplmetrics/internal/model"
	"github.com/pitchview/iplmetrics/internal/report"
	"github.com/pitchview/iplmetrics/internal/resolve"
	"github.com/pitchview/iplmetrics/internal/stats"
)

var (
	recSeason    int
	recMatchType string
	recPhase     string
	recVenue     string
)

var recordsCmd = &cobra.Command{
	Use:   "records <type>",
	Short: "Record instances: fastest fifty, highest score, best bowling",
	Long: `Record instances across the dataset.

  iplmetrics records "fastest fifty"
  iplmetrics records "highest score" --season 2016
  iplmetrics records "best bowling" --match-type playoffs
  iplmetrics records "highest score" --phase death --venue wankhede`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&recSeason, "season", 0, "restrict to one season (0 = all)")
	recordsCmd.Flags().StringVar(&recMatchType, "match-type", "", `"final" or "playoffs"`)
	recordsCmd.Flags().StringVar(&recPhase, "phase", "", "powerplay, middle, or death")
	recordsCmd.Flags().StringVar(&recVenue, "venue", "", "restrict to one ground")
}

func runRecords(cmd *cobra.Command, args []string) error {
	engine, _, err := loadCore()
	if err != nil {
		return err
	}

	phase := model.PhaseUnknown
	if recPhase != "" {
		phase = model.ParsePhase(recPhase)
		if phase == model.PhaseUnknown {
			return fmt.Errorf("unknown phase %q: want powerplay, middle, or death", recPhase)
		}
	}
	venue := ""
	if recVenue != "" {
		venue = resolve.Venue(recVenue)
	}

	recordType := strings.ToLower(strings.Join(args, " "))
	entries, err := engine.FindRecords(stats.RecordQuery{
		Type:      recordType,
		Season:    recSeason,
		MatchType: recMatchType,
		Phase:     phase,
		Venue:     venue,
	})
	if err != nil {
		return err
	}

	header := "VALUE"
	switch recordType {
	case "fastest fifty":
		header = "BALLS"
	case "highest score":
		header = "RUNS"
	case "best bowling":
		header = "WKTS"
	}
	report.PrintRecords(os.Stdout, "Record: "+recordType, header, entries)
	return nil
}
