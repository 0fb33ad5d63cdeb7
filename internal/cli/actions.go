package cli

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/manifoldco/promptui"
	"github.com/memedao/memedao-cli/internal/app"
	"github.com/memedao/memedao-cli/internal/cli/render"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// errCancelled is returned when the user declines a confirmation prompt
var errCancelled = errors.New("cancelled")

// actionFunc runs one write action against the wired app
type actionFunc func(ctx context.Context, a *app.App) (*domain.ActionResult, error)

// runAction confirms, runs and renders a write action
func runAction(cmd *cobra.Command, prompt string, run actionFunc) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	// without a wallet the action fails its own precondition check
	if a.Session.ConnectionState() == domain.Connected {
		ok, err := a.Selector.Confirm(cmd.Context(), prompt)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), render.FormatWarning("Cancelled, nothing was submitted"))
			return &ReportedError{Err: errCancelled}
		}
	}

	result, err := run(cmd.Context(), a)
	if err != nil {
		return reportActionError(cmd, a, result, err)
	}
	return writeResult(cmd, a, result, func() error {
		return render.NewActionRenderer(cmd.OutOrStdout(), a.Config.Network.ExplorerURL).Render(result)
	})
}

// amountAction parses a token amount argument before running the action
func amountAction(cmd *cobra.Command, kind domain.ActionKind, raw string, run func(ctx context.Context, a *app.App, amount *big.Int) (*domain.ActionResult, error)) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	amount, err := domain.ParseAmount(raw, a.Config.TokenDecimals)
	if err != nil {
		return reportActionError(cmd, a, domain.Failed(kind, "Please enter a valid amount."), err)
	}

	prompt := fmt.Sprintf("%s %s $MEME", lo.Capitalize(string(kind)), domain.FormatAmount(amount, a.Config.TokenDecimals, a.Config.DisplayPlaces))
	return runAction(cmd, prompt, func(ctx context.Context, a *app.App) (*domain.ActionResult, error) {
		return run(ctx, a, amount)
	})
}

// NewStakeCmd creates the stake command
func NewStakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stake <amount>",
		Short: "Stake $MEME tokens",
		Long: `Stake $MEME tokens. The staking contract is approved first when the current
allowance does not cover the amount; an allowance left by an earlier attempt
is reused.`,
		Example: `  memedao stake 100
  memedao stake 12.5 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return amountAction(cmd, domain.ActionStake, args[0], func(ctx context.Context, a *app.App, amount *big.Int) (*domain.ActionResult, error) {
				return a.Actions.Stake(ctx, amount)
			})
		},
	}
}

// NewUnstakeCmd creates the unstake command
func NewUnstakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unstake <amount>",
		Short: "Withdraw staked $MEME tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return amountAction(cmd, domain.ActionUnstake, args[0], func(ctx context.Context, a *app.App, amount *big.Int) (*domain.ActionResult, error) {
				return a.Actions.Unstake(ctx, amount)
			})
		},
	}
}

// NewClaimCmd creates the claim command
func NewClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim",
		Short: "Claim pending staking rewards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, "Claim pending rewards", func(ctx context.Context, a *app.App) (*domain.ActionResult, error) {
				return a.Actions.ClaimRewards(ctx)
			})
		},
	}
}

// NewProposeCmd creates the propose command
func NewProposeCmd() *cobra.Command {
	var meta domain.ProposalMetadata

	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Create a DAO proposal",
		Long: `Create a DAO proposal. The metadata document is pinned first and its content
id is registered with the DAO contract. Voting closes at the end date.

Missing fields are prompted for in interactive mode.`,
		Example: `  memedao propose \
    --title "Fund the meme museum" \
    --description "A permanent home for memes" \
    --funding 50000 \
    --category Community \
    --end-date 2025-07-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			if !a.Config.NonInteractive {
				if err := promptMissing(&meta); err != nil {
					return err
				}
			}

			return runAction(cmd, fmt.Sprintf("Create proposal %q", meta.Title), func(ctx context.Context, a *app.App) (*domain.ActionResult, error) {
				return a.Actions.CreateProposal(ctx, &meta)
			})
		},
	}

	cmd.Flags().StringVar(&meta.Title, "title", "", "Proposal title")
	cmd.Flags().StringVar(&meta.Description, "description", "", "Proposal description")
	cmd.Flags().StringVar(&meta.RequestedFunding, "funding", "", "Requested funding in $MEME")
	cmd.Flags().StringVar(&meta.Category, "category", "", "Proposal category")
	cmd.Flags().StringVar(&meta.EndDate, "end-date", "", "Voting end date (YYYY-MM-DD or RFC 3339)")

	return cmd
}

// promptMissing asks for every empty metadata field
func promptMissing(meta *domain.ProposalMetadata) error {
	fields := []struct {
		label  string
		target *string
	}{
		{"Title", &meta.Title},
		{"Description", &meta.Description},
		{"Requested funding", &meta.RequestedFunding},
		{"Category", &meta.Category},
		{"End date (YYYY-MM-DD)", &meta.EndDate},
	}
	for _, f := range fields {
		if *f.target != "" {
			continue
		}
		prompt := promptui.Prompt{Label: f.label}
		value, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
		*f.target = value
	}
	return nil
}

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	var support, against bool

	cmd := &cobra.Command{
		Use:   "vote [index]",
		Short: "Vote on a DAO proposal",
		Long: `Vote for or against a proposal. Without an index, an interactive picker
lists the active proposals you have not voted on yet.`,
		Example: `  memedao vote 3 --for
  memedao vote --against`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			var index uint64
			if len(args) == 1 {
				if index, err = parseIndex(args[0]); err != nil {
					return reportActionError(cmd, a, domain.Failed(domain.ActionCastVote, err.Error()), err)
				}
			} else {
				if index, err = pickProposal(cmd.Context(), a); err != nil {
					return err
				}
			}

			side := "against"
			if support {
				side = "for"
			}
			return runAction(cmd, fmt.Sprintf("Vote %s proposal #%d", side, index), func(ctx context.Context, a *app.App) (*domain.ActionResult, error) {
				return a.Actions.CastVote(ctx, index, support)
			})
		},
	}

	cmd.Flags().BoolVar(&support, "for", false, "Vote in favour")
	cmd.Flags().BoolVar(&against, "against", false, "Vote against")
	cmd.MarkFlagsMutuallyExclusive("for", "against")
	cmd.MarkFlagsOneRequired("for", "against")

	return cmd
}

// pickProposal lets the user choose among proposals still open to them
func pickProposal(ctx context.Context, a *app.App) (uint64, error) {
	snap, err := a.Aggregator.Refresh(ctx)
	if err != nil {
		return 0, err
	}

	open := lo.Filter(snap.Proposals, func(p *domain.Proposal, _ int) bool {
		return p.State().AcceptsVotes() && !p.HasCurrentUserVoted
	})
	if len(open) == 0 {
		return 0, fmt.Errorf("no active proposals to vote on")
	}

	p, err := a.Selector.SelectProposal(ctx, open, "Select a proposal to vote on")
	if err != nil {
		return 0, err
	}
	return p.Index, nil
}
