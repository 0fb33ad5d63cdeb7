package cli

import (
	"fmt"

	"github.com/memedao/memedao-cli/internal/cli/render"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/spf13/cobra"
)

// walletInfo is the structured form of the wallet command
type walletInfo struct {
	State   string `json:"state" yaml:"state"`
	Account string `json:"account,omitempty" yaml:"account,omitempty"`
	Network string `json:"network" yaml:"network"`
	ChainID uint64 `json:"chainId" yaml:"chainId"`
}

// NewWalletCmd creates the wallet command
func NewWalletCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Show the wallet connection and network",
		Long: `Show whether a signing key is configured, the account it signs as and the
network it signs for. With --check, the RPC chain id and the three contract
deployments are verified as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if check {
				if err := app.Chain.VerifyChain(cmd.Context()); err != nil {
					return err
				}
				if err := app.Chain.VerifyContracts(cmd.Context()); err != nil {
					return err
				}
			}

			id := app.Session.Identity()
			info := walletInfo{
				State:   id.State.String(),
				Network: app.Config.Network.Name,
				ChainID: app.Config.Network.ChainID,
			}
			if id.State == domain.Connected {
				info.Account = id.Account.Hex()
			}

			return writeResult(cmd, app, info, func() error {
				if err := render.RenderWallet(cmd.OutOrStdout(), id, app.Config.Network); err != nil {
					return err
				}
				if check {
					fmt.Fprintln(cmd.OutOrStdout())
					fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Chain id and contract deployments verified"))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Verify the chain id and contract deployments")

	return cmd
}
