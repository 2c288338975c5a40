// Package tui provides an interactive terminal user interface for the phone book.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Directory provides search, add, update and remove.
	Directory driving.DirectoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(directory driving.DirectoryService) *Ports {
	return &Ports{Directory: directory}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Directory == nil {
		return ErrMissingDirectoryService
	}
	return nil
}
