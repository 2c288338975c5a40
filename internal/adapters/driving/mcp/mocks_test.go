package mcp

import (
	"context"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
)

// mockDirectoryService is a mock implementation of driving.DirectoryService
// that fails every call with err.
type mockDirectoryService struct {
	err error
}

func (m *mockDirectoryService) Search(_ context.Context, _ int) (string, error) {
	return "", m.err
}

func (m *mockDirectoryService) Add(_ context.Context, _ int, _ string) error {
	return m.err
}

func (m *mockDirectoryService) Update(_ context.Context, _ int, _ string) (string, error) {
	return "", m.err
}

func (m *mockDirectoryService) Remove(_ context.Context, _ int) (string, error) {
	return "", m.err
}

func (m *mockDirectoryService) Len(_ context.Context) int {
	return 0
}

func (m *mockDirectoryService) Backend() domain.Backend {
	return domain.BackendHash
}
