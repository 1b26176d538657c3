// Command podro is the Pocket DRO data store CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pocketdro/podro-cli/internal/adapters/driven/blob/file"
	"github.com/pocketdro/podro-cli/internal/adapters/driven/blob/sqlite"
	configfile "github.com/pocketdro/podro-cli/internal/adapters/driven/config/file"
	"github.com/pocketdro/podro-cli/internal/adapters/driving/cli"
	"github.com/pocketdro/podro-cli/internal/core/ports/driven"
	"github.com/pocketdro/podro-cli/internal/core/services"
	"github.com/pocketdro/podro-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	logger.SetVerbose(config.GetBool("verbose"))

	blob, storePath, err := openBackend(config)
	if err != nil {
		return err
	}

	cli.SetVersion(version)
	cli.SetDatastoreService(services.NewDatastoreService(blob))
	cli.SetStorePath(storePath)

	return cli.Execute()
}

// openBackend builds the storage backend selected in the config.
// It returns the backing file path for backends that have one, so the
// watch command knows what to observe.
func openBackend(config *configfile.ConfigStore) (driven.BlobStore, string, error) {
	backend := config.GetString("storage.backend")
	path := config.GetString("storage.path")

	switch backend {
	case "", "file":
		blob, err := file.NewBlobStore(path)
		if err != nil {
			return nil, "", fmt.Errorf("opening file backend: %w", err)
		}
		return blob, blob.Path(), nil

	case "sqlite":
		blob, err := sqlite.NewBlobStore(path)
		if err != nil {
			return nil, "", fmt.Errorf("opening sqlite backend: %w", err)
		}
		return blob, "", nil

	default:
		return nil, "", fmt.Errorf("unknown storage backend %q", backend)
	}
}
