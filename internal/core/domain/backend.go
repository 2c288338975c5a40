package domain

import (
	"fmt"
	"strings"
)

const unknownDescription = "Unknown"

// Backend selects the directory implementation.
type Backend string

// Available backends.
const (
	// BackendHash keys contacts by phone number in a hash index.
	BackendHash Backend = "hash"

	// BackendList scans an unordered list of contacts.
	BackendList Backend = "list"
)

// DefaultBackend is used when nothing else is configured.
const DefaultBackend = BackendHash

// AllBackends returns every supported backend in menu order.
func AllBackends() []Backend {
	return []Backend{BackendHash, BackendList}
}

// IsValid returns true if the backend is recognised.
func (b Backend) IsValid() bool {
	switch b {
	case BackendHash, BackendList:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b Backend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b Backend) Description() string {
	switch b {
	case BackendHash:
		return "Hashing (indexed lookup)"
	case BackendList:
		return "List (linear scan)"
	default:
		return unknownDescription
	}
}

// ParseBackend interprets user input by its first letter, so "h", "hash"
// and "Hashing" all select BackendHash.
func ParseBackend(s string) (Backend, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "h"):
		return BackendHash, nil
	case strings.HasPrefix(s, "l"):
		return BackendList, nil
	default:
		return "", fmt.Errorf("%w: backend %q", ErrUnsupportedType, s)
	}
}
