package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:       "list <players|teams|venues|seasons>",
	Short:     "List catalog entries from the imported dataset",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"players", "teams", "venues", "seasons"},
	RunE:      runList,
}

func runList(cmd *cobra.Command, args []string) error {
	engine, _, err := loadCore()
	if err != nil {
		return err
	}
	table := engine.Table()

	switch args[0] {
	case "players":
		for _, p := range table.Players() {
			fmt.Fprintln(os.Stdout, p)
		}
	case "teams":
		for _, t := range table.Teams() {
			fmt.Fprintln(os.Stdout, t)
		}
	case "venues":
		for _, v := range table.Venues() {
			fmt.Fprintln(os.Stdout, v)
		}
	case "seasons":
		for _, s := range table.Seasons() {
			fmt.Fprintln(os.Stdout, s)
		}
	default:
		return fmt.Errorf("unknown catalog %q (want players, teams, venues, or seasons)", args[0])
	}
	return nil
}
