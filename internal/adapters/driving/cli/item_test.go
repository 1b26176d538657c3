package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Get Command Tests

func TestGetCmd_Use(t *testing.T) {
	assert.Equal(t, "get [module] [key]", getCmd.Use)
}

func TestGetCmd_RequiresExactlyTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"get", "lathe"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestGetCmd_PrintsStoredValue(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"get", "lathe", "spindle_rpm"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "1200")
}

func TestGetCmd_MissingItemFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"get", "lathe", "nope"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no item at lathe/nope")
}

func TestGetCmd_ServiceNotConfigured(t *testing.T) {
	oldService := datastoreService
	datastoreService = nil
	defer func() {
		datastoreService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"get", "lathe", "spindle_rpm"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

// Set Command Tests

func TestSetCmd_Use(t *testing.T) {
	assert.Equal(t, "set [module] [key] [value]", setCmd.Use)
}

func TestSetCmd_RequiresThreeArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"set", "lathe", "chuck"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 3 arg(s)")
}

func TestSetCmd_StoresJSONValue(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"set", "lathe", "offsets", `{"x": 0.125, "z": -0.02}`})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Set lathe/offsets")

	value, ok, err := datastoreService.GetItem(context.Background(), "lathe", "offsets")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"x":0.125,"z":-0.02}`, formatValue(value))
}

func TestSetCmd_FreeTextStoredAsString(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"set", "lathe", "note", "check", "belt", "tension"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)

	value, ok, err := datastoreService.GetItem(context.Background(), "lathe", "note")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "check belt tension", value)
}

func TestSetCmd_EmptyModuleFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"set", "", "key", "value"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "module name is required")
}

// Delete Command Tests

func TestDeleteCmd_Use(t *testing.T) {
	assert.Equal(t, "delete [module] [key]", deleteCmd.Use)
}

func TestDeleteCmd_RemovesItem(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"delete", "lathe", "chuck"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Deleted lathe/chuck")

	_, ok, err := datastoreService.GetItem(context.Background(), "lathe", "chuck")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteCmd_AbsentItemSucceeds(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"delete", "lathe", "nope"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
}

// List Command Tests

func TestListCmd_Use(t *testing.T) {
	assert.Equal(t, "list [module]", listCmd.Use)
}

func TestListCmd_ListsModules(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "lathe (2 items)")
	assert.Contains(t, buf.String(), "mill (1 items)")
	assert.Contains(t, buf.String(), "Total: 2 modules, 3 items")
}

func TestListCmd_ListsModuleItems(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list", "lathe"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "spindle_rpm = 1200")
	assert.Contains(t, buf.String(), "chuck = three-jaw")
	assert.Contains(t, buf.String(), "Total: 2 items")
}

func TestListCmd_UnknownModuleFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"list", "grinder"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no module named grinder")
}

func TestListCmd_EmptyStore(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assert.NoError(t, datastoreService.ClearAllItems(context.Background()))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Store is empty.")
}

// Clear Command Tests

func TestClearCmd_Use(t *testing.T) {
	assert.Equal(t, "clear", clearCmd.Use)
}

func TestClearCmd_ForceClearsStore(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"clear", "--force"})
	defer func() {
		rootCmd.SetArgs(nil)
		clearForce = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Store cleared.")

	store := datastoreService.GetAllItems(context.Background())
	assert.Empty(t, store.Modules())
}

func TestClearCmd_WithoutConfirmationAborts(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Aborted.")

	store := datastoreService.GetAllItems(context.Background())
	assert.Len(t, store.Modules(), 2)
}
