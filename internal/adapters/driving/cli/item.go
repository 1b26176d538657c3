package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pocketdro/podro-cli/internal/core/domain"
)

var getCmd = &cobra.Command{
	Use:   "get [module] [key]",
	Short: "Print a stored item",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

var setCmd = &cobra.Command{
	Use:   "set [module] [key] [value]",
	Short: "Store an item",
	Long: `Store a value under module and key, creating the module if needed.

The value is parsed as JSON when possible, so numbers, booleans,
arrays and objects keep their type. Anything that is not valid JSON
is stored as a plain string:

  podro set lathe spindle_rpm 1200
  podro set lathe chuck '"three-jaw"'
  podro set lathe offsets '{"x": 0.125, "z": -0.02}'
  podro set lathe note free text is stored as-is`,
	Args: cobra.MinimumNArgs(3),
	RunE: runSet,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [module] [key]",
	Short: "Remove an item",
	Long:  `Remove the item at module and key. A module left empty is removed too.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runDelete,
}

var listCmd = &cobra.Command{
	Use:   "list [module]",
	Short: "List modules or the items of one module",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored data",
	Long:  `Remove every module, item and the schema entry from the store.`,
	RunE:  runClear,
}

// clearForce skips the confirmation prompt.
var clearForce bool

func init() {
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(clearCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	if datastoreService == nil {
		return errors.New("datastore service not configured")
	}

	module, key := args[0], args[1]

	value, ok, err := datastoreService.GetItem(cmd.Context(), module, key)
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}
	if !ok {
		return fmt.Errorf("no item at %s/%s", module, key)
	}

	cmd.Println(formatValue(value))
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	if datastoreService == nil {
		return errors.New("datastore service not configured")
	}

	module, key := args[0], args[1]
	value := parseItemValue(strings.Join(args[2:], " "))

	if err := datastoreService.SetItem(cmd.Context(), module, key, value); err != nil {
		return fmt.Errorf("failed to set item: %w", err)
	}

	cmd.Printf("Set %s/%s\n", module, key)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if datastoreService == nil {
		return errors.New("datastore service not configured")
	}

	module, key := args[0], args[1]

	if err := datastoreService.DeleteItem(cmd.Context(), module, key); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	cmd.Printf("Deleted %s/%s\n", module, key)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	if datastoreService == nil {
		return errors.New("datastore service not configured")
	}

	store := datastoreService.GetAllItems(cmd.Context())

	if len(args) == 1 {
		return listModule(cmd, store, args[0])
	}

	modules := store.Modules()
	if len(modules) == 0 {
		cmd.Println("Store is empty.")
		return nil
	}

	for _, name := range modules {
		mod, ok := store.Module(name)
		if !ok {
			continue
		}
		cmd.Printf("  %s (%d items)\n", name, mod.Len())
	}
	cmd.Printf("\nTotal: %d modules, %d items\n", len(modules), store.KeyCount())
	return nil
}

func listModule(cmd *cobra.Command, store *domain.Store, name string) error {
	mod, ok := store.Module(name)
	if !ok {
		return fmt.Errorf("no module named %s", name)
	}

	cmd.Printf("Module %s:\n\n", name)
	for _, key := range mod.Keys() {
		value, _ := mod.Get(key)
		cmd.Printf("  %s = %s\n", key, formatValue(value))
	}
	cmd.Printf("\nTotal: %d items\n", mod.Len())
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	if datastoreService == nil {
		return errors.New("datastore service not configured")
	}

	if !clearForce && !confirm(cmd, "This permanently deletes all stored data. Continue?") {
		cmd.Println("Aborted.")
		return nil
	}

	if err := datastoreService.ClearAllItems(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}

	cmd.Println("Store cleared.")
	return nil
}

// parseItemValue interprets raw as JSON when possible and falls back
// to a plain string, so `set` accepts both typed and free-form input.
func parseItemValue(raw string) domain.Value {
	v, err := domain.ParseValue([]byte(raw))
	if err != nil {
		return raw
	}
	return v
}

// formatValue renders a stored value for terminal output. Strings
// print bare; everything else prints as compact JSON.
func formatValue(v domain.Value) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// confirm asks the user a yes/no question. It answers no when stdin
// is not a terminal, so scripted runs must pass --force.
//
//nolint:errcheck // CLI helper, error ignored for UX
func confirm(cmd *cobra.Command, prompt string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	cmd.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
