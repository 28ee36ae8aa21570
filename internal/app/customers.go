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

func newCustomersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customer accounts",
	}

	cmd.AddCommand(
		newCustomersListCmd(),
		newCustomersAddCmd(),
		newCustomersRmCmd(),
	)
	return cmd
}

func newCustomersListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customer accounts with their loyalty standing",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			customers := st.Customers()

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(customers)
			}

			if len(customers) == 0 {
				warn("No customers registered yet.")
				return nil
			}

			engine := loyalty.New(st)
			header("%s customers (%d)", cfg.Shop.Name, len(customers))
			for _, c := range customers {
				points := engine.Points(c)
				status := loyalty.StatusFor(points)
				statusStr := string(status)
				if status == loyalty.StatusGold {
					statusStr = color.YellowString(statusStr)
				}
				fmt.Printf("  %-16s %-24s %5d pts  %-8s %d purchases\n",
					util.Truncate(c.Username, 14),
					util.Truncate(c.Name, 22),
					points, statusStr, len(c.Purchases))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newCustomersAddCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "add <username> <name>",
		Short: "Register a customer account",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if password == "" {
				var err error
				password, err = util.ReadPassword("Password: ")
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
			}

			c, err := st.AddCustomer(args[0], password, args[1])
			if err != nil {
				return err
			}
			persist()

			ok("Registered %s (%s)", c.Username, c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newCustomersRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <username>",
		Short: "Remove a customer account",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := st.CustomerByUsername(args[0])
			if c == nil {
				return fmt.Errorf("no customer with username %q", args[0])
			}
			st.RemoveCustomer(c.ID)
			persist()

			ok("Removed account %s", c.Username)
			return nil
		},
	}
}
