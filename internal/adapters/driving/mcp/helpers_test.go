package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketdro/podro-cli/internal/adapters/driven/blob/memory"
	"github.com/pocketdro/podro-cli/internal/core/services"
)

// newTestServer builds a server over a real datastore service with an
// in-memory backend, seeded with a couple of items.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	svc := services.NewDatastoreService(memory.NewBlobStore())

	ctx := context.Background()
	require.NoError(t, svc.SetItem(ctx, "lathe", "spindle_rpm", "1200"))
	require.NoError(t, svc.SetItem(ctx, "mill", "table_travel_x", "850"))

	server, err := NewServer(&Ports{Datastore: svc})
	require.NoError(t, err)
	return server
}
