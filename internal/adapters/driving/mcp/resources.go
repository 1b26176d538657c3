package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Podro resources.
	uriScheme = "podro://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the full exported store.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "export",
		Name:        "export",
		Description: "The full data store as a pretty-printed JSON document",
		MIMEType:    "application/json",
	}, s.handleExportResource)

	// Template for individual modules.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "modules/{module}",
		Name:        "module-items",
		Description: "The items of a single module as JSON",
		MIMEType:    "application/json",
	}, s.handleModuleResource)
}

// handleExportResource returns the exported store document.
func (s *Server) handleExportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, _, err := s.ports.Datastore.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("exporting store: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleModuleResource returns the items of one module.
func (s *Server) handleModuleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the module name from a URI like podro://modules/{module}
	name := extractModuleName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	store := s.ports.Datastore.GetAllItems(ctx)
	mod, ok := store.Module(name)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(mod, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling module: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractModuleName extracts the module name from a URI like podro://modules/{module}.
func extractModuleName(uri string) string {
	const prefix = uriScheme + "modules/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
