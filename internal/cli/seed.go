package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample dataset unless the shop was seeded before",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openShop(cmd.Context(), rootOpts, cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			seeded, err := env.demo.SeedIfNeeded(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to seed", err)
			}
			info := env.demo.ShopInfo()
			return env.out.Success(map[string]interface{}{"seeded": seeded, "shop": info}, func(w io.Writer) {
				if !seeded {
					fmt.Fprintln(w, "Demo data already present, nothing to do")
					return
				}
				fmt.Fprintf(w, "Seeded %s: %d items, %d customers, %d invoices\n", info.ShopName, info.Items, info.Customers, info.Invoices)
			})
		},
	}
}

func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase every record; run seed afterwards to reload the sample dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openShop(cmd.Context(), rootOpts, cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			if purge {
				err = env.demo.Purge(cmd.Context())
			} else {
				err = env.demo.Reset(cmd.Context())
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to reset", err)
			}
			info := env.demo.ShopInfo()
			return env.out.Success(map[string]interface{}{"purged": purge, "shop": info}, func(w io.Writer) {
				if purge {
					fmt.Fprintf(w, "Purged stored data for %s\n", env.cfg.Storage.Key)
					return
				}
				fmt.Fprintf(w, "Reset %s: %d items, %d customers, %d invoices\n", info.ShopName, info.Items, info.Customers, info.Invoices)
			})
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "delete the stored entry instead of saving an empty shop")
	return cmd
}
