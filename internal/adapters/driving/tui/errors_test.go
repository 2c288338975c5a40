package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingDirectoryService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingDirectoryService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingDirectoryService.Error(), "directory service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
