package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookstorectl/internal/stats"
	"github.com/blackwell-systems/bookstorectl/internal/util"
)

func newStatsCmd() *cobra.Command {
	var (
		asJSON bool
		top    int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show sales statistics",
		Long:  "Aggregates every customer's purchase history into revenue totals and top-seller rankings.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			summary := stats.Compute(st.Customers())

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			header("%s sales", cfg.Shop.Name)
			fmt.Printf("  %-14s %s\n", "revenue:", color.GreenString("$%.2f", summary.TotalRevenue))
			fmt.Printf("  %-14s %d\n", "units sold:", summary.UnitsSold)

			if top > 0 && len(summary.TopBooks) > 0 {
				fmt.Println()
				header("Top books")
				for i, b := range summary.TopBooks {
					if i >= top {
						break
					}
					fmt.Printf("  %2d. %-36s %4d sold  %s\n",
						i+1, util.Truncate(b.Title, 34), b.Units,
						color.GreenString("$%.2f", b.Revenue))
				}
			}

			if top > 0 && len(summary.TopCustomers) > 0 {
				fmt.Println()
				header("Top customers")
				for i, c := range summary.TopCustomers {
					if i >= top {
						break
					}
					fmt.Printf("  %2d. %-24s %4d purchases  %s\n",
						i+1, util.Truncate(c.Name, 22), c.Purchases,
						color.GreenString("$%.2f", c.Spent))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&top, "top", 10, "How many rows to show in each ranking")
	return cmd
}
