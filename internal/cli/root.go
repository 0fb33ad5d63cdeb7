package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/memedao/memedao-cli/internal/adapters/progress"
	"github.com/memedao/memedao-cli/internal/app"
	"github.com/memedao/memedao-cli/internal/cli/render"
	"github.com/memedao/memedao-cli/internal/config"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"

	// skipAppAnnotation marks commands that run without chain access
	skipAppAnnotation = "memedao/skip-app"
)

// appState owns the wired application for one command execution
type appState struct {
	cleanup func()
}

func (s *appState) close() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

// Execute runs the root command and releases the application afterwards,
// including when the command fails.
func Execute(ctx context.Context, args []string) error {
	state := &appState{}
	defer state.close()

	rootCmd := newRootCmd(state)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&appState{})
}

func newRootCmd(state *appState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "memedao",
		Short: "Staking and governance station for the $MEME DAO",
		Long: `memedao reads staking and governance state from the $MEME token, staking
and DAO contracts, and submits stake, unstake, claim, proposal and vote
transactions from a configured wallet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipApp(cmd) {
				return nil
			}

			workDir, err := os.Getwd()
			if err != nil {
				return err
			}

			v, err := config.SetupViper(workDir)
			if err != nil {
				return err
			}
			config.BindFlags(v, cmd)

			appInstance, cleanup, err := app.InitApp(v, newSink(v))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			state.cleanup = cleanup

			ctx := cmd.Context()
			if appInstance.Config.CanSign() {
				if err := appInstance.Session.Connect(ctx); err != nil {
					return fmt.Errorf("failed to connect wallet: %w", err)
				}
			}

			cmd.SetContext(context.WithValue(ctx, appKey, appInstance))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output JSON (same as --output json)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Skip transaction confirmation")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network preset (fuji, avalanche, local)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC endpoint, overrides the network preset")
	rootCmd.PersistentFlags().String("tokenomics-file", "", "Token allocation file (TOML)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "read",
		Title: "Read Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "staking",
		Title: "Staking Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})

	for _, c := range []*cobra.Command{NewStatsCmd(), NewProposalsCmd(), NewProposalCmd(), NewTokenomicsCmd(), NewWatchCmd()} {
		c.GroupID = "read"
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{NewStakeCmd(), NewUnstakeCmd(), NewClaimCmd()} {
		c.GroupID = "staking"
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{NewProposeCmd(), NewVoteCmd()} {
		c.GroupID = "governance"
		rootCmd.AddCommand(c)
	}

	rootCmd.AddCommand(NewWalletCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func skipApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.Annotations[skipAppAnnotation] == "true"
}

// newSink shows a spinner only for table output on a color-capable terminal
func newSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("json") || v.GetBool("non_interactive") || v.GetString("output") != "table" || color.NoColor {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerProgress()
}

func spinning(a *app.App) bool {
	_, ok := a.Progress.(*progress.SpinnerProgress)
	return ok
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// structured reports whether output goes through json or yaml encoding
func structured(a *app.App) bool {
	return a.Config.Output == "json" || a.Config.Output == "yaml"
}

// writeResult encodes v in the configured structured format, or calls table
func writeResult(cmd *cobra.Command, a *app.App, v any, table func() error) error {
	if structured(a) {
		return render.WriteStructured(cmd.OutOrStdout(), a.Config.Output, v)
	}
	return table()
}

// ReportedError is an error that has already been shown to the user
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// reportActionError prints validation failures as warnings and the rest as
// errors. The returned error only sets the exit status.
func reportActionError(cmd *cobra.Command, a *app.App, result *domain.ActionResult, err error) error {
	if structured(a) && result != nil {
		if werr := render.WriteStructured(cmd.OutOrStdout(), a.Config.Output, result); werr != nil {
			return errors.Join(err, werr)
		}
		return &ReportedError{Err: err}
	}

	out := cmd.ErrOrStderr()
	var actionErr *domain.ActionError
	switch {
	case domain.IsValidationError(err):
		fmt.Fprintln(out, render.FormatWarning(notice(result, err)))
	case errors.As(err, &actionErr) && spinning(a):
		// the spinner already printed the notice
	default:
		fmt.Fprintln(out, render.FormatError(notice(result, err)))
	}
	if a.Config.Debug {
		fmt.Fprintln(out, err)
	}
	return &ReportedError{Err: err}
}

func notice(result *domain.ActionResult, err error) string {
	if result != nil && result.Notice != "" {
		return result.Notice
	}
	return err.Error()
}
