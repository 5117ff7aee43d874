package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pitchview/iplmetrics/internal/router"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a free-text question about the dataset",
	Long: `Answer a free-text question by pattern-matching it onto a statistic.

Examples:
  iplmetrics ask "kohli"
  iplmetrics ask "csk vs mi"
  iplmetrics ask "bumrah in the death overs in 2020"
  iplmetrics ask "rohit and kohli in 2016"
  iplmetrics ask "top bowlers in 2019"
  iplmetrics ask "fastest fifty"
  iplmetrics ask "stats at wankhede"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	engine, resolver, err := loadCore()
	if err != nil {
		return err
	}

	r := router.New(engine, resolver, nil, log)
	text, err := r.Route(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, text)
	return nil
}
