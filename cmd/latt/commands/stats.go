package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/latt/internal/app"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [roots...]",
		Short: "Scan the roots once and print lattice statistics",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			return c.app.Stats(cmd.Context(), args, cmd.OutOrStdout(), app.StatsOptions{
				Limit: limit,
			})
		},
	}
	cmd.Flags().IntP("limit", "l", 10, "Number of top values to display")
	return cmd
}
