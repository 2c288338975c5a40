package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
)

// DirectoryService exposes the phone book to drivers.
// Not-found and already-exists outcomes are reported as errors wrapping
// domain.ErrNotFound and domain.ErrAlreadyExists.
type DirectoryService interface {
	// Search returns the name stored for a phone number.
	Search(ctx context.Context, phoneNumber int) (string, error)

	// Add creates a contact. Existing contacts are never overwritten.
	Add(ctx context.Context, phoneNumber int, name string) error

	// Update replaces a contact's name and returns the previous one.
	Update(ctx context.Context, phoneNumber int, name string) (string, error)

	// Remove deletes a contact and returns its name.
	Remove(ctx context.Context, phoneNumber int) (string, error)

	// Len returns the number of contacts, or -1 when the backing book
	// cannot count them. Callers must not print a negative count.
	Len(ctx context.Context) int

	// Backend returns the implementation backing the directory.
	Backend() domain.Backend
}

// ImportService bulk-loads contact records into a directory.
type ImportService interface {
	// Import reads "phoneNumber name" records from r, one per line.
	Import(ctx context.Context, r io.Reader) (domain.ImportReport, error)

	// ImportFile imports the records stored at path.
	// A missing file yields an error wrapping domain.ErrNotFound.
	ImportFile(ctx context.Context, path string) (domain.ImportReport, error)
}
