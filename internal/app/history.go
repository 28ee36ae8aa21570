package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookstorectl/internal/loyalty"
	"github.com/blackwell-systems/bookstorectl/internal/util"
)

func newHistoryCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history <username>",
		Short: "Show a customer's purchase history",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := st.CustomerByUsername(args[0])
			if c == nil {
				return fmt.Errorf("no customer with username %q", args[0])
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(c.Purchases)
			}

			engine := loyalty.New(st)
			points := engine.Points(c)
			status := loyalty.StatusFor(points)

			header("%s (%s) — %d points, %s member", c.Name, c.Username, points, status)
			if len(c.Purchases) == 0 {
				fmt.Println("  No purchases yet.")
				return nil
			}

			total := 0.0
			for _, p := range c.Purchases {
				fmt.Printf("  %-36s x%-3d %s  %s\n",
					util.Truncate(p.BookTitle, 34),
					p.Quantity,
					color.GreenString("$%.2f", p.TotalPrice),
					p.Date)
				total += p.TotalPrice
			}
			fmt.Printf("  %-41s %s\n", "total spent:", color.GreenString("$%.2f", total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
