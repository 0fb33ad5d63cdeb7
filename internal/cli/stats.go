package cli

import (
	"github.com/memedao/memedao-cli/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show staking and governance statistics",
		Long: `Show the staking APY, your staked balance, pending rewards, unlock time and
voting power, together with the DAO quorum and proposal counts.

Account figures are only shown when a wallet is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			snap, err := app.Aggregator.Refresh(cmd.Context())
			if err != nil {
				return err
			}

			return writeResult(cmd, app, snap, func() error {
				return render.NewStatsRenderer(cmd.OutOrStdout(), app.Config.TokenDecimals, app.Config.DisplayPlaces).RenderStats(snap)
			})
		},
	}
}
