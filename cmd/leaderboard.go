package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pitchview/iplmetrics/internal/model"
	"github.com/pitchview/iplmetrics/internal/report"
	"github.com/pitchview/iplmetrics/internal/resolve"
	"github.com/pitchview/iplmetrics/internal/stats"
)

var (
	lbBowling bool
	lbSeason  int
	lbTopN    int
	lbStat    string
	lbPhase   string
	lbVenue   string
	lbEntity  string
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Top run scorers or wicket takers, plain or filtered",
	Long: `Top run scorers or wicket takers.

Plain mode ranks by total runs (or wickets with --bowling). With --stat,
rate-based rankings with filters apply instead:

  iplmetrics leaderboard --stat "strike rate" --phase death --season 2020
  iplmetrics leaderboard --stat "win %" --entity team --venue wankhede`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().BoolVar(&lbBowling, "bowling", false, "rank by wickets instead of runs")
	leaderboardCmd.Flags().IntVar(&lbSeason, "season", 0, "restrict to one season (0 = all)")
	leaderboardCmd.Flags().IntVar(&lbTopN, "top", 0, "number of entries (default from config)")
	leaderboardCmd.Flags().StringVar(&lbStat, "stat", "", `rate stat: "strike rate" or "win %"`)
	leaderboardCmd.Flags().StringVar(&lbPhase, "phase", "", "powerplay, middle, or death")
	leaderboardCmd.Flags().StringVar(&lbVenue, "venue", "", "restrict to one ground")
	leaderboardCmd.Flags().StringVar(&lbEntity, "entity", "player", "rank players or teams")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	engine, _, err := loadCore()
	if err != nil {
		return err
	}

	if lbStat == "" {
		category := stats.CategoryBatting
		title := "Top run scorers"
		header := "RUNS"
		if lbBowling {
			category = stats.CategoryBowling
			title = "Top wicket takers"
			header = "WKTS"
		}
		entries, err := engine.Leaderboard(category, lbSeason)
		if err != nil {
			return err
		}
		report.PrintLeaderboard(os.Stdout, title, header, entries)
		return nil
	}

	phase := model.PhaseUnknown
	if lbPhase != "" {
		phase = model.ParsePhase(lbPhase)
		if phase == model.PhaseUnknown {
			return fmt.Errorf("unknown phase %q: want powerplay, middle, or death", lbPhase)
		}
	}
	venue := ""
	if lbVenue != "" {
		venue = resolve.Venue(lbVenue)
	}
	topN := lbTopN
	if topN <= 0 {
		topN = cfg.DefaultTopN
	}

	entries, err := engine.FilteredLeaderboard(stats.FilteredQuery{
		Stat:       lbStat,
		TopN:       topN,
		Season:     lbSeason,
		Phase:      phase,
		Venue:      venue,
		EntityType: lbEntity,
	})
	if err != nil {
		return err
	}
	report.PrintLeaderboard(os.Stdout, "Leaderboard: "+lbStat, "VALUE", entries)
	return nil
}
