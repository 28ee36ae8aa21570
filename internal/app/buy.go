package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookstorectl/internal/auth"
	"github.com/blackwell-systems/bookstorectl/internal/loyalty"
	"github.com/blackwell-systems/bookstorectl/internal/store"
	"github.com/blackwell-systems/bookstorectl/internal/util"
)

func newBuyCmd() *cobra.Command {
	var (
		asUser   string
		password string
		redeem   bool
	)

	cmd := &cobra.Command{
		Use:   "buy <book-id>...",
		Short: "Buy books without the interactive storefront",
		Long: `Buys one copy of each listed book for a customer account.

With --redeem, the customer's loyalty point balance is converted to a
discount first (100 points per currency unit, capped at the order
total).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if asUser == "" {
				return fmt.Errorf("--as <username> is required")
			}
			if password == "" {
				var err error
				password, err = util.ReadPassword("Password: ")
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
			}

			svc := auth.New(st, cfg.Owner.Username, cfg.Owner.Password)
			user := svc.Login(asUser, password)
			if user == nil {
				return fmt.Errorf("invalid username or password")
			}
			if user.Role != store.RoleCustomer {
				return fmt.Errorf("only customer accounts can buy books")
			}

			c := st.CustomerByUsername(user.Username)
			if c == nil {
				return fmt.Errorf("account %q no longer exists", user.Username)
			}

			selected := make([]*store.Book, 0, len(args))
			for _, id := range args {
				b := st.BookByID(id)
				if b == nil {
					return fmt.Errorf("no book with id %q", id)
				}
				selected = append(selected, b)
			}

			engine := loyalty.New(st)
			receipt, err := engine.Purchase(c, selected, redeem)
			if err != nil {
				return err
			}
			persist()

			for _, b := range selected {
				fmt.Printf("  %-36s $%.2f\n", util.Truncate(b.Title, 34), b.Price)
			}
			if receipt.Redeemed > 0 {
				fmt.Printf("  %-36s -$%.2f\n", "points applied", receipt.Redeemed)
			}
			ok("Paid $%.2f, earned %d points (%d total, %s)",
				receipt.FinalCost, receipt.Earned, receipt.Points, receipt.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&asUser, "as", "", "Customer username")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	cmd.Flags().BoolVar(&redeem, "redeem", false, "Redeem loyalty points against the total")
	return cmd
}
