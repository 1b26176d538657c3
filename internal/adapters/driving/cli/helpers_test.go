package cli

import (
	"context"

	"github.com/pocketdro/podro-cli/internal/adapters/driven/blob/memory"
	"github.com/pocketdro/podro-cli/internal/core/services"
)

// setupTestServices wires a real datastore service over an in-memory
// backend, seeded with a couple of items. The returned cleanup restores
// the previous service.
func setupTestServices() func() {
	oldService := datastoreService
	oldStorePath := storePath

	blob := memory.NewBlobStore()
	svc := services.NewDatastoreService(blob)

	ctx := context.Background()
	_ = svc.SetItem(ctx, "lathe", "spindle_rpm", "1200")
	_ = svc.SetItem(ctx, "lathe", "chuck", "three-jaw")
	_ = svc.SetItem(ctx, "mill", "table_travel_x", "850")

	datastoreService = svc
	storePath = ""

	return func() {
		datastoreService = oldService
		storePath = oldStorePath
	}
}
