package mcp

import (
	"github.com/pocketdro/podro-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Datastore provides access to the structured data store.
	Datastore driving.DatastoreService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Datastore == nil {
		return ErrMissingDatastoreService
	}
	return nil
}
