package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go-hardware-demo/internal/export"

	"github.com/spf13/cobra"
)

type Summary struct {
	ShopName       string `json:"shopName"`
	ItemCount      int    `json:"itemCount"`
	LowStockCount  int    `json:"lowStockCount"`
	InventoryValue int64  `json:"inventoryValue"`
	SalesLast7Days int64  `json:"salesLast7Days"`
	UnpaidInvoices int    `json:"unpaidInvoices"`
}

func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openShop(cmd.Context(), rootOpts, cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			stats := env.dashboard.GetDashboardStats()
			sum := Summary{
				ShopName:       stats.ShopName,
				ItemCount:      stats.ItemCount,
				LowStockCount:  stats.LowStockCount,
				InventoryValue: stats.InventoryValue,
				SalesLast7Days: stats.SalesLast7Days,
				UnpaidInvoices: stats.UnpaidInvoices,
			}
			return env.out.Success(sum, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "Shop\t%s\n", sum.ShopName)
				fmt.Fprintf(tw, "Items\t%d (%d low)\n", sum.ItemCount, sum.LowStockCount)
				fmt.Fprintf(tw, "Inventory value\t%s\n", export.FormatINR(sum.InventoryValue))
				fmt.Fprintf(tw, "Sales, last 7 days\t%s\n", export.FormatINR(sum.SalesLast7Days))
				fmt.Fprintf(tw, "Unpaid invoices\t%d\n", sum.UnpaidInvoices)
				tw.Flush()
			})
		},
	}
}
