package memory

import (
	"sync"

	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driven"
)

// Ensure SynchronizedPhoneBook implements the interface.
var _ driven.PhoneBook = (*SynchronizedPhoneBook)(nil)

// SynchronizedPhoneBook serialises every call to the wrapped book under a
// single mutex. Each operation is one critical section, so check-then-act
// stays atomic across goroutines.
type SynchronizedPhoneBook struct {
	mu   sync.Mutex
	book driven.PhoneBook
}

// Synchronized wraps book for use from multiple goroutines.
// Wrapping an already synchronized book returns it unchanged.
func Synchronized(book driven.PhoneBook) *SynchronizedPhoneBook {
	if s, ok := book.(*SynchronizedPhoneBook); ok {
		return s
	}
	return &SynchronizedPhoneBook{book: book}
}

// Search returns the name stored for phoneNumber.
func (s *SynchronizedPhoneBook) Search(phoneNumber int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Search(phoneNumber)
}

// Add creates an entry if none exists for phoneNumber.
func (s *SynchronizedPhoneBook) Add(phoneNumber int, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Add(phoneNumber, name)
}

// Update replaces the name stored for phoneNumber.
func (s *SynchronizedPhoneBook) Update(phoneNumber int, name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Update(phoneNumber, name)
}

// Remove deletes the entry for phoneNumber.
func (s *SynchronizedPhoneBook) Remove(phoneNumber int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Remove(phoneNumber)
}

// Len returns the number of entries, or -1 if the wrapped book cannot
// report its size.
func (s *SynchronizedPhoneBook) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sized, ok := s.book.(interface{ Len() int }); ok {
		return sized.Len()
	}
	return -1
}

// Unwrap returns the wrapped book.
func (s *SynchronizedPhoneBook) Unwrap() driven.PhoneBook {
	return s.book
}
