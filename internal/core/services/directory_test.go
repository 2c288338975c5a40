package services

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driven"
	"github.com/custodia-labs/phonebook-cli/internal/logger"
)

func newDirectory(t *testing.T, backend domain.Backend) *DirectoryService {
	t.Helper()
	book, err := memory.New(backend)
	require.NoError(t, err)
	return NewDirectoryService(book, backend)
}

func TestNewDirectoryService(t *testing.T) {
	service := newDirectory(t, domain.BackendList)

	require.NotNil(t, service)
	assert.NotNil(t, service.book)
	assert.Equal(t, domain.BackendList, service.Backend())
	assert.Equal(t, 0, service.Len(context.Background()))
}

func TestDirectoryService_RoundTrip(t *testing.T) {
	for _, backend := range domain.AllBackends() {
		t.Run(backend.String(), func(t *testing.T) {
			service := newDirectory(t, backend)
			ctx := context.Background()

			require.NoError(t, service.Add(ctx, 555, "Ann"))

			err := service.Add(ctx, 555, "Bob")
			assert.ErrorIs(t, err, domain.ErrAlreadyExists)
			assert.Contains(t, err.Error(), "555")

			name, err := service.Search(ctx, 555)
			require.NoError(t, err)
			assert.Equal(t, "Ann", name)

			previous, err := service.Update(ctx, 555, "Cid")
			require.NoError(t, err)
			assert.Equal(t, "Ann", previous)

			removed, err := service.Remove(ctx, 555)
			require.NoError(t, err)
			assert.Equal(t, "Cid", removed)

			_, err = service.Search(ctx, 555)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Equal(t, 0, service.Len(ctx))
		})
	}
}

func TestDirectoryService_NotFound(t *testing.T) {
	service := newDirectory(t, domain.BackendHash)
	ctx := context.Background()

	_, err := service.Search(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Update(ctx, 1, "X")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Remove(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 0, service.Len(ctx))
}

func TestDirectoryService_LenUnknown(t *testing.T) {
	bare := struct{ driven.PhoneBook }{memory.NewIndexedPhoneBook()}
	service := NewDirectoryService(bare, domain.BackendHash)

	assert.Equal(t, -1, service.Len(context.Background()))
}

func TestDirectoryService_LogsWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	service := newDirectory(t, domain.BackendHash)
	ctx := context.Background()
	require.NoError(t, service.Add(ctx, 7, "Eve"))
	_, _ = service.Search(ctx, 8)

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] add 7: Eve")
	assert.Contains(t, out, "[DEBUG] search 8: not found")
	assert.Contains(t, out, "hash add took")
}
