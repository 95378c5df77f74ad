// File: cmd/teams.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aegis-c9/aegis-cli/internal/roster"
)

// newTeamsCmd creates the `teams` command for browsing the reference lists.
func newTeamsCmd() *cobra.Command {
	var game string

	teamsCmd := &cobra.Command{
		Use:   "teams [query]",
		Short: "Lists the teams a session can be started for",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := roster.Game(game)
			if !g.Valid() {
				return fmt.Errorf("unknown game %q", game)
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			matches := roster.SearchTeams(g, query)
			if len(matches) == 0 {
				return fmt.Errorf("no %s teams match %q", g, query)
			}
			for _, t := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	teamsCmd.Flags().StringVarP(&game, "game", "g", "lol", `game mode: "lol" or "valorant"`)
	return teamsCmd
}

func init() {
	rootCmd.AddCommand(newTeamsCmd())
}
