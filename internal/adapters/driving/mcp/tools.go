package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
)

// NumberInput identifies a contact by phone number.
type NumberInput struct {
	PhoneNumber int `json:"phone_number" jsonschema:"the phone number of the contact"`
}

// ContactInput carries a phone number and a name.
type ContactInput struct {
	PhoneNumber int    `json:"phone_number" jsonschema:"the phone number of the contact"`
	Name        string `json:"name" jsonschema:"the name of the contact"`
}

// LookupOutput reports a name found, replaced or removed.
type LookupOutput struct {
	PhoneNumber int    `json:"phone_number"`
	Found       bool   `json:"found"`
	Name        string `json:"name,omitempty"`
}

// AddOutput reports whether a contact was created.
type AddOutput struct {
	PhoneNumber int  `json:"phone_number"`
	Added       bool `json:"added"`

	// Existing is the name already stored when Added is false.
	Existing string `json:"existing,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Look up the name that belongs to a phone number",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add",
		Description: "Add a contact. Never overwrites an existing phone number",
	}, s.handleAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update",
		Description: "Rename an existing contact and return the previous name",
	}, s.handleUpdate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove",
		Description: "Remove a contact and return its name",
	}, s.handleRemove)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input NumberInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	name, err := s.ports.Directory.Search(ctx, input.PhoneNumber)
	return lookupResult(input.PhoneNumber, name, err)
}

// handleAdd handles the add tool invocation.
func (s *Server) handleAdd(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContactInput,
) (*mcp.CallToolResult, AddOutput, error) {
	output := AddOutput{PhoneNumber: input.PhoneNumber}

	err := s.ports.Directory.Add(ctx, input.PhoneNumber, input.Name)
	switch {
	case err == nil:
		output.Added = true
	case errors.Is(err, domain.ErrAlreadyExists):
		existing, searchErr := s.ports.Directory.Search(ctx, input.PhoneNumber)
		if searchErr == nil {
			output.Existing = existing
		}
	default:
		return nil, AddOutput{}, err
	}
	return nil, output, nil
}

// handleUpdate handles the update tool invocation.
func (s *Server) handleUpdate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContactInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	previous, err := s.ports.Directory.Update(ctx, input.PhoneNumber, input.Name)
	return lookupResult(input.PhoneNumber, previous, err)
}

// handleRemove handles the remove tool invocation.
func (s *Server) handleRemove(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input NumberInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	removed, err := s.ports.Directory.Remove(ctx, input.PhoneNumber)
	return lookupResult(input.PhoneNumber, removed, err)
}

// lookupResult maps a directory result onto LookupOutput. Not found is an
// ordinary result, not a tool error.
func lookupResult(phoneNumber int, name string, err error) (*mcp.CallToolResult, LookupOutput, error) {
	switch {
	case err == nil:
		return nil, LookupOutput{PhoneNumber: phoneNumber, Found: true, Name: name}, nil
	case errors.Is(err, domain.ErrNotFound):
		return nil, LookupOutput{PhoneNumber: phoneNumber}, nil
	default:
		return nil, LookupOutput{}, err
	}
}
