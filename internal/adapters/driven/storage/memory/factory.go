package memory

import (
	"fmt"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driven"
)

// New creates an empty phone book for the given backend.
func New(backend domain.Backend) (driven.PhoneBook, error) {
	switch backend {
	case domain.BackendHash:
		return NewIndexedPhoneBook(), nil
	case domain.BackendList:
		return NewScanningPhoneBook(), nil
	default:
		return nil, fmt.Errorf("%w: backend %q", domain.ErrUnsupportedType, backend)
	}
}
