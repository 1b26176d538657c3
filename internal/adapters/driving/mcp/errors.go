// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Podro. It enables AI assistants like Claude to read and modify the local
// data store.
package mcp

import "errors"

// ErrMissingDatastoreService is returned when the datastore service is not provided.
var ErrMissingDatastoreService = errors.New("mcp: datastore service is required")
