package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the store as pretty-printed JSON",
	Long: `Write the full store as an indented JSON document, schema entry
first. Stores without a schema get default display labels in the
exported copy; the stored data is not modified.

Use -o to choose the output file, or "-o -" to write to stdout.`,
	RunE: runExport,
}

// exportOutput is the destination path, "-" for stdout.
var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: suggested filename, \"-\" for stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if datastoreService == nil {
		return errors.New("datastore service not configured")
	}

	data, filename, err := datastoreService.Export(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to export store: %w", err)
	}

	if exportOutput == "-" {
		cmd.Print(string(data))
		return nil
	}

	dest := exportOutput
	if dest == "" {
		dest = filename
	}

	if err := os.WriteFile(dest, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	cmd.Printf("Exported store to %s\n", dest)
	return nil
}
