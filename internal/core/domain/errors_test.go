package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
}

func TestErrAlreadyExists(t *testing.T) {
	assert.Equal(t, "already exists", ErrAlreadyExists.Error())
	assert.False(t, errors.Is(ErrAlreadyExists, ErrNotFound))
}

func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: %d", ErrNotFound, 555)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "not found: 555", err.Error())
}
