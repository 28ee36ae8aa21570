package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// exportPayload is the document written by the export command. Customer
// passwords are excluded by the model's marshal tags.
type exportPayload struct {
	Shop      string      `json:"shop" yaml:"shop"`
	Books     interface{} `json:"books" yaml:"books"`
	Customers interface{} `json:"customers" yaml:"customers"`
}

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the shop's data as JSON or YAML",
		Long: `Writes the full inventory and customer records (passwords excluded)
to stdout, for backups or piping into other tools.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			payload := exportPayload{
				Shop:      cfg.Shop.Name,
				Books:     st.Books(),
				Customers: st.Customers(),
			}

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(payload)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	return cmd
}
