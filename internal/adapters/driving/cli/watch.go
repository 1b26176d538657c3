package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pocketdro/podro-cli/internal/adapters/driven/blob/file"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the store file for external changes",
	Long: `Watch the backing store file and report every external change
until interrupted. Only available with the file storage backend.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if datastoreService == nil {
		return errors.New("datastore service not configured")
	}
	if storePath == "" {
		return errors.New("watch requires the file storage backend")
	}

	watcher, err := file.NewWatcher(storePath)
	if err != nil {
		return fmt.Errorf("failed to watch store: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", storePath)
	printStoreSummary(cmd, ctx)

	err = watcher.Watch(ctx, func() {
		cmd.Println("Store changed:")
		printStoreSummary(cmd, ctx)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printStoreSummary(cmd *cobra.Command, ctx context.Context) {
	store := datastoreService.GetAllItems(ctx)
	cmd.Printf("  %d modules, %d items\n", len(store.Modules()), store.KeyCount())
}
