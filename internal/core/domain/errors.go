package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates no contact exists for a phone number.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a contact already exists for a phone number.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown backend or sample size.
	ErrUnsupportedType = errors.New("unsupported type")
)
