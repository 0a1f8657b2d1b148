package cli

import (
	"errors"
	"fmt"
	"io"

	"go-hardware-demo/internal/export"
	"go-hardware-demo/internal/store"

	"github.com/spf13/cobra"
)

func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write spreadsheets for the inventory or a single invoice",
	}
	cmd.AddCommand(newExportInventoryCommand(rootOpts))
	cmd.AddCommand(newExportInvoiceCommand(rootOpts))
	return cmd
}

func newExportInventoryCommand(rootOpts *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Export every item to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openShop(cmd.Context(), rootOpts, cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			items := env.inventory.ListItems("")
			f, err := export.InventoryWorkbook(items)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to build workbook", err)
			}
			defer f.Close()
			if err := f.SaveAs(out); err != nil {
				return WrapExitError(ExitCommandError, "failed to write workbook", err)
			}

			return env.out.Success(map[string]interface{}{"path": out, "items": len(items)}, func(w io.Writer) {
				fmt.Fprintf(w, "Wrote %d items to %s\n", len(items), out)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "inventory.xlsx", "output file")
	return cmd
}

func newExportInvoiceCommand(rootOpts *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "invoice <INV-xxxx>",
		Short: "Export one invoice to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openShop(cmd.Context(), rootOpts, cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			inv, err := env.billing.FindInvoiceByNumber(args[0])
			if errors.Is(err, store.ErrInvoiceNotFound) {
				return WrapExitError(ExitFailure, fmt.Sprintf("no invoice %s", args[0]), err)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read invoice", err)
			}

			f, name, err := export.InvoiceWorkbook(env.demo.ShopInfo().ShopName, inv, env.cfg.Shop.Location())
			if err != nil {
				return WrapExitError(ExitFailure, "failed to build workbook", err)
			}
			defer f.Close()

			path := out
			if path == "" {
				path = name
			}
			if err := f.SaveAs(path); err != nil {
				return WrapExitError(ExitCommandError, "failed to write workbook", err)
			}

			return env.out.Success(map[string]interface{}{"path": path, "invoiceNo": inv.InvoiceNo, "total": inv.Total}, func(w io.Writer) {
				fmt.Fprintf(w, "Wrote %s (%s) to %s\n", inv.InvoiceNo, export.FormatINR(inv.Total), path)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <INV-xxxx>.xlsx)")
	return cmd
}
