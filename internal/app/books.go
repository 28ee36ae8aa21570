package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookstorectl/internal/util"
)

func newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage the book inventory",
	}

	cmd.AddCommand(
		newBooksListCmd(),
		newBooksAddCmd(),
		newBooksRmCmd(),
		newBooksSetPriceCmd(),
	)
	return cmd
}

func newBooksListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all books in the inventory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			books := st.Books()

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(books)
			}

			if len(books) == 0 {
				warn("No books in the inventory. Add one with: bookstorectl books add")
				return nil
			}

			header("%s inventory (%d books)", cfg.Shop.Name, len(books))
			for _, b := range books {
				fmt.Printf("  %-10s %-38s %-24s %s\n",
					util.Truncate(b.ID, 8),
					util.Truncate(b.Title, 36),
					util.Truncate(b.Author, 22),
					color.GreenString("$%.2f", b.Price))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newBooksAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <author> <price>",
		Short: "Add a book to the inventory",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[2], err)
			}

			b, err := st.AddBook(args[0], args[1], price)
			if err != nil {
				return err
			}
			persist()

			ok("Added %q by %s at $%.2f (id %s)", b.Title, b.Author, b.Price, b.ID)
			return nil
		},
	}
}

func newBooksRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a book from the inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			b := st.BookByID(args[0])
			if b == nil {
				return fmt.Errorf("no book with id %q", args[0])
			}
			st.RemoveBook(b.ID)
			persist()

			ok("Removed %q", b.Title)
			return nil
		},
	}
}

func newBooksSetPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-price <id> <price>",
		Short: "Change a book's price",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[1], err)
			}

			if err := st.SetBookPrice(args[0], price); err != nil {
				return err
			}
			persist()

			b := st.BookByID(args[0])
			ok("Price of %q is now $%.2f", b.Title, b.Price)
			return nil
		},
	}
}
