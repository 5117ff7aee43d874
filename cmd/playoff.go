package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pitchview/iplmetrics/internal/report"
	"github.com/pitchview/iplmetrics/internal/resolve"
)

var playoffCmd = &cobra.Command{
	Use:   "playoff <team or player>",
	Short: "Playoff-stage record for a team or player",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlayoff,
}

func runPlayoff(cmd *cobra.Command, args []string) error {
	engine, resolver, err := loadCore()
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	name := ""
	if resolve.IsKnownTeam(input) {
		name = resolve.Team(input)
	} else if player, ok := resolver.Player(input); ok {
		name = player
	} else {
		return fmt.Errorf("no team or player matching %q in the dataset", input)
	}

	p, err := engine.PlayoffPerformance(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\n%s", report.RenderPlayoffPerformance(p))
	return nil
}
