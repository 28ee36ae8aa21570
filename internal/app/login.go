package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookstorectl/internal/auth"
	"github.com/blackwell-systems/bookstorectl/internal/loyalty"
	"github.com/blackwell-systems/bookstorectl/internal/stats"
	"github.com/blackwell-systems/bookstorectl/internal/store"
	"github.com/blackwell-systems/bookstorectl/internal/tui"
	"github.com/blackwell-systems/bookstorectl/internal/util"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in to the shop",
		Long: `Signs in as the shop owner or a customer.

The owner lands on a dashboard of the shop's standing. Customers land
in the storefront, where they can select books and check out with or
without redeeming loyalty points.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInteractiveLogin()
		},
	}
}

func runInteractiveLogin() error {
	svc := auth.New(st, cfg.Owner.Username, cfg.Owner.Password)

	var username, password string
	if util.IsTTY() {
		data, err := tui.RunLoginForm(cfg.Shop.Name)
		if errors.Is(err, tui.ErrCanceled) {
			return nil // user backed out of the form
		}
		if err != nil {
			return err
		}
		username, password = data.Username, data.Password
	} else {
		fmt.Print("Username: ")
		if _, err := fmt.Scanln(&username); err != nil {
			return fmt.Errorf("reading username: %w", err)
		}
		var err error
		password, err = util.ReadPassword("Password: ")
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
	}

	user := svc.Login(username, password)
	if user == nil {
		return fmt.Errorf("invalid username or password")
	}

	if user.Role == store.RoleOwner {
		return runOwnerDashboard()
	}

	c := st.CustomerByUsername(user.Username)
	if c == nil {
		return fmt.Errorf("account %q no longer exists", user.Username)
	}
	return runCustomerSession(c)
}

// runOwnerDashboard prints the shop's standing for the signed-in owner.
func runOwnerDashboard() error {
	books := st.Books()
	customers := st.Customers()
	summary := stats.Compute(customers)

	header("%s — owner dashboard", cfg.Shop.Name)
	fmt.Println()
	fmt.Printf("  %-20s %d\n", "Books in stock:", len(books))
	fmt.Printf("  %-20s %d\n", "Customers:", len(customers))
	fmt.Printf("  %-20s %d\n", "Units sold:", summary.UnitsSold)
	fmt.Printf("  %-20s $%.2f\n", "Revenue:", summary.TotalRevenue)
	fmt.Println()
	fmt.Println("Manage the shop with: bookstorectl books / customers / stats")
	return nil
}

// runCustomerSession shows the storefront and runs checkout for the
// signed-in customer.
func runCustomerSession(c *store.Customer) error {
	engine := loyalty.New(st)
	books := st.Books()

	points := engine.Points(c)
	status := loyalty.StatusFor(points)

	result, err := tui.RunStorefront(cfg.Shop.Name, c.Name, points, string(status), books)
	if err != nil {
		return err
	}
	if result == nil {
		return nil // browsed and left
	}

	selected := make([]*store.Book, 0, len(result.Selected))
	for _, i := range result.Selected {
		selected = append(selected, books[i])
	}

	receipt, err := engine.Purchase(c, selected, result.Redeem)
	if err != nil {
		return err
	}
	persist()

	fmt.Println(tui.RenderReceipt(cfg.Shop.Name, selected, *receipt))
	return nil
}
