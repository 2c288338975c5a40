package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driven"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driving"
	"github.com/custodia-labs/phonebook-cli/internal/logger"
)

// Ensure DirectoryService implements the interface.
var _ driving.DirectoryService = (*DirectoryService)(nil)

// DirectoryService exposes a driven.PhoneBook through domain errors.
type DirectoryService struct {
	book    driven.PhoneBook
	backend domain.Backend
}

// NewDirectoryService creates a directory service over book.
// backend is reported by Backend and used in log lines.
func NewDirectoryService(book driven.PhoneBook, backend domain.Backend) *DirectoryService {
	return &DirectoryService{
		book:    book,
		backend: backend,
	}
}

// Search returns the name stored for a phone number.
func (s *DirectoryService) Search(_ context.Context, phoneNumber int) (string, error) {
	defer logger.Elapsed(s.backend.String()+" search", time.Now())

	name, ok := s.book.Search(phoneNumber)
	if !ok {
		logger.Debug("search %d: not found", phoneNumber)
		return "", fmt.Errorf("%w: %d", domain.ErrNotFound, phoneNumber)
	}
	logger.Debug("search %d: %s", phoneNumber, name)
	return name, nil
}

// Add creates a contact unless one exists for the number.
func (s *DirectoryService) Add(_ context.Context, phoneNumber int, name string) error {
	defer logger.Elapsed(s.backend.String()+" add", time.Now())

	if !s.book.Add(phoneNumber, name) {
		logger.Debug("add %d: already exists", phoneNumber)
		return fmt.Errorf("%w: %d", domain.ErrAlreadyExists, phoneNumber)
	}
	logger.Debug("add %d: %s", phoneNumber, name)
	return nil
}

// Update replaces a contact's name and returns the previous one.
func (s *DirectoryService) Update(_ context.Context, phoneNumber int, name string) (string, error) {
	defer logger.Elapsed(s.backend.String()+" update", time.Now())

	previous, ok := s.book.Update(phoneNumber, name)
	if !ok {
		logger.Debug("update %d: not found", phoneNumber)
		return "", fmt.Errorf("%w: %d", domain.ErrNotFound, phoneNumber)
	}
	logger.Debug("update %d: %s -> %s", phoneNumber, previous, name)
	return previous, nil
}

// Remove deletes a contact and returns its name.
func (s *DirectoryService) Remove(_ context.Context, phoneNumber int) (string, error) {
	defer logger.Elapsed(s.backend.String()+" remove", time.Now())

	removed, ok := s.book.Remove(phoneNumber)
	if !ok {
		logger.Debug("remove %d: not found", phoneNumber)
		return "", fmt.Errorf("%w: %d", domain.ErrNotFound, phoneNumber)
	}
	logger.Debug("remove %d: %s", phoneNumber, removed)
	return removed, nil
}

// Len returns the number of contacts, or -1 if the book cannot tell.
func (s *DirectoryService) Len(_ context.Context) int {
	if sized, ok := s.book.(interface{ Len() int }); ok {
		return sized.Len()
	}
	return -1
}

// Backend returns the implementation backing the directory.
func (s *DirectoryService) Backend() domain.Backend {
	return s.backend
}
