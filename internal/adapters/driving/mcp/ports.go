package mcp

import (
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Directory provides the four phone book operations. MCP handlers may
	// run concurrently, so the directory must be safe for concurrent use.
	Directory driving.DirectoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Directory == nil {
		return ErrMissingDirectoryService
	}
	return nil
}
