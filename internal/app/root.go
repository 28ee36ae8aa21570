package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/bookstorectl/internal/config"
	"github.com/blackwell-systems/bookstorectl/internal/store"
	"github.com/blackwell-systems/bookstorectl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	st  *store.Store

	flagNoColor bool
	flagConfig  string

	appVersion = "dev"
)

// SetVersion records the build version for the version command.
func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "bookstorectl",
	Short: "Run a small bookstore: inventory, customers, and loyalty purchases",
	Long: `bookstorectl manages a bookstore's inventory and customer accounts.

Books and customers live in plain text files under the shop data
directory. Customers earn loyalty points on every purchase and can
redeem them for discounts at checkout.

Run 'bookstorectl' with no arguments to sign in interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if util.IsTTY() {
			return runInteractiveLogin()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bookstorectl/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		st = store.New(cfg.BooksPath(), cfg.CustomersPath())
		if err := st.Load(); err != nil {
			// Unreadable data files are reported but never fatal.
			// The shop opens with whatever loaded cleanly.
			warn("some data could not be loaded: %v", err)
		}
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newBooksCmd(),
		newCustomersCmd(),
		newRegisterCmd(),
		newLoginCmd(),
		newBuyCmd(),
		newHistoryCmd(),
		newStatsCmd(),
		newExportCmd(),
		newVersionCmd(),
	)
}

// persist writes the store back to disk. Failures are warnings, not
// errors: the in-memory state stays authoritative for the session.
func persist() {
	if err := st.Save(); err != nil {
		warn("saving shop data: %v", err)
	}
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
