package cli

import (
	"fmt"

	"github.com/memedao/memedao-cli/internal/adapters/fs"
	"github.com/memedao/memedao-cli/internal/cli/render"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/spf13/cobra"
)

const defaultTokenomicsFile = "tokenomics.toml"

// NewTokenomicsCmd creates the tokenomics command
func NewTokenomicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenomics",
		Short: "Show the $MEME token distribution",
		Long: `Show how the $MEME supply is allocated. The built-in distribution is used
unless an allocation file is given with --file or tokenomics_file.

Total supply and total staked are read from chain when reachable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			t, err := app.ShowTokenomics.Run(cmd.Context())
			if err != nil {
				return err
			}

			return writeResult(cmd, app, t, func() error {
				return render.NewTokenomicsRenderer(cmd.OutOrStdout(), app.Config.TokenDecimals, app.Config.DisplayPlaces).Render(t)
			})
		},
	}

	cmd.Flags().StringP("file", "f", "", "Allocation file (TOML)")
	cmd.AddCommand(newTokenomicsInitCmd())

	return cmd
}

func newTokenomicsInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in distribution to an allocation file",
		Long: `Write the built-in distribution to an allocation file that can be edited and
passed back with --file. An existing file is never overwritten.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipAppAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultTokenomicsFile
			if len(args) == 1 {
				path = args[0]
			}

			store := fs.NewTokenomicsStore(&config.RuntimeConfig{})
			if err := store.Save(cmd.Context(), path, domain.DefaultTokenomics()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("Wrote %s", path)))
			return nil
		},
	}
}
