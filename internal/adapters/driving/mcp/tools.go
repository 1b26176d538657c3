package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pocketdro/podro-cli/internal/core/domain"
)

// GetItemInput is the input schema for the get_item tool.
type GetItemInput struct {
	Module string `json:"module" jsonschema:"the module holding the item"`
	Key    string `json:"key" jsonschema:"the key of the item within the module"`
}

// GetItemOutput is the output schema for the get_item tool. Value is
// the JSON encoding of the stored value, empty when the item is absent.
type GetItemOutput struct {
	Found bool   `json:"found"`
	Value string `json:"value,omitempty"`
}

// SetItemInput is the input schema for the set_item tool. Value is
// parsed as JSON when possible and stored as a plain string otherwise.
type SetItemInput struct {
	Module string `json:"module" jsonschema:"the module to store the item under"`
	Key    string `json:"key" jsonschema:"the key of the item within the module"`
	Value  string `json:"value" jsonschema:"the value to store, as JSON or plain text"`
}

// SetItemOutput is the output schema for the set_item tool.
type SetItemOutput struct {
	Module string `json:"module"`
	Key    string `json:"key"`
}

// DeleteItemInput is the input schema for the delete_item tool.
type DeleteItemInput struct {
	Module string `json:"module" jsonschema:"the module holding the item"`
	Key    string `json:"key" jsonschema:"the key of the item to remove"`
}

// DeleteItemOutput is the output schema for the delete_item tool.
type DeleteItemOutput struct {
	Deleted bool `json:"deleted"`
}

// ListModulesInput is the input schema for the list_modules tool.
type ListModulesInput struct{}

// ListModulesOutput is the output schema for the list_modules tool.
type ListModulesOutput struct {
	Modules []ModuleInfo `json:"modules"`
	Count   int          `json:"count"`
}

// ModuleInfo describes one module and its keys in stored order.
type ModuleInfo struct {
	Name string   `json:"name"`
	Keys []string `json:"keys"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_item",
		Description: "Get a stored value by module and key",
	}, s.handleGetItem)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_item",
		Description: "Store a value under a module and key",
	}, s.handleSetItem)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_item",
		Description: "Remove a stored item",
	}, s.handleDeleteItem)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_modules",
		Description: "List all modules and their keys",
	}, s.handleListModules)
}

// handleGetItem handles the get_item tool invocation.
func (s *Server) handleGetItem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetItemInput,
) (*mcp.CallToolResult, GetItemOutput, error) {
	value, ok, err := s.ports.Datastore.GetItem(ctx, input.Module, input.Key)
	if err != nil {
		return nil, GetItemOutput{}, err
	}
	if !ok {
		return nil, GetItemOutput{Found: false}, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, GetItemOutput{}, fmt.Errorf("marshalling value: %w", err)
	}

	return nil, GetItemOutput{Found: true, Value: string(data)}, nil
}

// handleSetItem handles the set_item tool invocation.
func (s *Server) handleSetItem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SetItemInput,
) (*mcp.CallToolResult, SetItemOutput, error) {
	value, err := domain.ParseValue([]byte(input.Value))
	if err != nil {
		// Not valid JSON; store the text as-is.
		value = input.Value
	}

	if err := s.ports.Datastore.SetItem(ctx, input.Module, input.Key, value); err != nil {
		return nil, SetItemOutput{}, err
	}

	return nil, SetItemOutput{Module: input.Module, Key: input.Key}, nil
}

// handleDeleteItem handles the delete_item tool invocation.
func (s *Server) handleDeleteItem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteItemInput,
) (*mcp.CallToolResult, DeleteItemOutput, error) {
	// Existence check and delete are separate store cycles; under the
	// single-writer model nothing changes between them.
	_, existed, err := s.ports.Datastore.GetItem(ctx, input.Module, input.Key)
	if err != nil {
		return nil, DeleteItemOutput{}, err
	}

	if err := s.ports.Datastore.DeleteItem(ctx, input.Module, input.Key); err != nil {
		return nil, DeleteItemOutput{}, err
	}

	return nil, DeleteItemOutput{Deleted: existed}, nil
}

// handleListModules handles the list_modules tool invocation.
func (s *Server) handleListModules(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListModulesInput,
) (*mcp.CallToolResult, ListModulesOutput, error) {
	store := s.ports.Datastore.GetAllItems(ctx)

	names := store.Modules()
	output := ListModulesOutput{
		Modules: make([]ModuleInfo, 0, len(names)),
		Count:   len(names),
	}

	for _, name := range names {
		mod, ok := store.Module(name)
		if !ok {
			continue
		}
		output.Modules = append(output.Modules, ModuleInfo{
			Name: name,
			Keys: mod.Keys(),
		})
	}

	return nil, output, nil
}
