// Package shell provides the line-oriented interactive phone book driver.
//
// The shell asks for a backend, optionally loads a sample phone book, and
// then runs a numbered command loop (1 search, 2 insert, 3 update,
// 4 delete, 5 quit), timing each directory call.
package shell

import (
	"errors"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driving"
)

// ErrMissingFactory is returned when no session factory is provided.
var ErrMissingFactory = errors.New("shell: session factory is required")

// Session is a directory together with the importer that fills it.
type Session struct {
	Directory driving.DirectoryService
	Importer  driving.ImportService
}

// Factory creates an empty session for the chosen backend.
type Factory func(backend domain.Backend) (*Session, error)

// SamplePathFunc resolves the file holding a sample phone book.
type SamplePathFunc func(size domain.SampleSize) (string, error)
