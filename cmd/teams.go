package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pitchview/iplmetrics/internal/report"
	"github.com/pitchview/iplmetrics/internal/resolve"
)

var teamsCmd = &cobra.Command{
	Use:   "teams <team1> <team2>",
	Short: "Head-to-head record between two teams",
	Long: "Head-to-head record between two teams. Short codes work: " +
		"'iplmetrics teams csk mi'.",
	Args: cobra.ExactArgs(2),
	RunE: runTeams,
}

func runTeams(cmd *cobra.Command, args []string) error {
	engine, _, err := loadCore()
	if err != nil {
		return err
	}

	h, err := engine.TeamVsTeam(resolve.Team(args[0]), resolve.Team(args[1]))
	if err != nil {
		return err
	}
	report.PrintHeadToHead(os.Stdout, h)
	return nil
}
