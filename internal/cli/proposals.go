package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/memedao/memedao-cli/internal/cli/render"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewProposalsCmd creates the proposals list command
func NewProposalsCmd() *cobra.Command {
	var (
		search  string
		state   string
		votable bool
	)

	cmd := &cobra.Command{
		Use:     "proposals",
		Aliases: []string{"ls"},
		Short:   "List DAO proposals",
		Long: `List every DAO proposal with its state, vote tallies and quorum progress.

When a wallet is connected, proposals you already voted on are marked.`,
		Example: `  # List all proposals
  memedao proposals

  # Active proposals mentioning marketing
  memedao proposals --state active --search marketing

  # Proposals you can still vote on
  memedao proposals --votable`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListProposalsParams{Search: search, Votable: votable}
			if state != "" {
				if params.State, err = domain.ParseProposalState(state); err != nil {
					return err
				}
			}

			result, err := app.ListProposals.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return writeResult(cmd, app, result.Proposals, func() error {
				return render.NewProposalsRenderer(cmd.OutOrStdout(), app.Config.TokenDecimals, app.Config.DisplayPlaces).RenderList(result)
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Fuzzy match against title, category and proposer")
	cmd.Flags().StringVar(&state, "state", "", fmt.Sprintf("Filter by state (%s)", stateNames()))
	cmd.Flags().BoolVar(&votable, "votable", false, "Only proposals you can still vote on")

	return cmd
}

// NewProposalCmd creates the proposal detail command
func NewProposalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "proposal <index>",
		Short: "Show a proposal with its metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			detail, err := app.ShowProposal.Run(cmd.Context(), index)
			if err != nil {
				return err
			}

			return writeResult(cmd, app, detail.Proposal, func() error {
				return render.NewProposalsRenderer(cmd.OutOrStdout(), app.Config.TokenDecimals, app.Config.DisplayPlaces).RenderDetail(detail)
			})
		},
	}
}

// parseIndex accepts "3" or "#3"
func parseIndex(raw string) (uint64, error) {
	index, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(raw), "#"), 10, 64)
	if err != nil || index == 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidProposalIndex, raw)
	}
	return index, nil
}

func stateNames() string {
	names := make([]string, 0, len(domain.AllProposalStates))
	for _, s := range domain.AllProposalStates {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
