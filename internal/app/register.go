package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookstorectl/internal/util"
)

func newRegisterCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "register <username> <name>",
		Short: "Create your own customer account",
		Long: `Creates a new customer account. New accounts start with zero
loyalty points and Silver status.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if password == "" {
				first, err := util.ReadPassword("Password: ")
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				again, err := util.ReadPassword("Confirm password: ")
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				if first != again {
					return fmt.Errorf("passwords do not match")
				}
				password = first
			}

			c, err := st.AddCustomer(args[0], password, args[1])
			if err != nil {
				return err
			}
			persist()

			ok("Welcome to %s, %s! Sign in with: bookstorectl login", cfg.Shop.Name, c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}
