package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pocketdro/podro-cli/internal/core/domain"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the store with a JSON document",
	Long: `Parse the given file as a JSON document and replace the entire
store with it, schema entry included. Pass "-" to read from stdin.

This discards all current data; use export first to keep a copy.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// importForce skips the confirmation prompt.
var importForce bool

func init() {
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if datastoreService == nil {
		return errors.New("datastore service not configured")
	}

	source := args[0]

	reader := cmd.InOrStdin()
	if source != "-" {
		f, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", source, err)
		}
		defer f.Close() //nolint:errcheck
		reader = f
	}

	if !importForce && !confirm(cmd, "This replaces all stored data. Continue?") {
		cmd.Println("Aborted.")
		return nil
	}

	if err := datastoreService.Import(cmd.Context(), reader); err != nil {
		switch {
		case errors.Is(err, domain.ErrParse):
			return fmt.Errorf("%s is not valid JSON: %w", source, err)
		case errors.Is(err, domain.ErrFormat):
			return fmt.Errorf("%s is not a store document: %w", source, err)
		default:
			return fmt.Errorf("failed to import store: %w", err)
		}
	}

	cmd.Println("Store imported.")
	return nil
}
