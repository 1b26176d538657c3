// Package cli implements the command-line interface for the Podro
// data store. Commands are thin adapters over the driving ports; all
// store semantics live in the core services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pocketdro/podro-cli/internal/core/ports/driving"
	"github.com/pocketdro/podro-cli/internal/logger"
)

// version is the build version, overridden at link time.
var version = "dev"

// datastoreService is injected by the composition root before Execute.
var datastoreService driving.DatastoreService

// storePath is the backing file path when the file backend is in use,
// empty otherwise. The watch command needs it.
var storePath string

// verboseFlag enables debug logging across all commands.
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "podro",
	Short: "Pocket DRO data store",
	Long: `Podro manages a small structured data store for machine-shop
utilities: per-module key-value items persisted as a single JSON
document, with import, export and schema-aware display labels.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetDatastoreService injects the datastore service used by all
// data commands.
func SetDatastoreService(s driving.DatastoreService) {
	datastoreService = s
}

// SetStorePath records the file path of the active store, enabling
// the watch command. Pass an empty string for non-file backends.
func SetStorePath(path string) {
	storePath = path
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
