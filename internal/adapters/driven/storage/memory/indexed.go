package memory

import (
	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driven"
)

// Ensure IndexedPhoneBook implements the interface.
var _ driven.PhoneBook = (*IndexedPhoneBook)(nil)

// IndexedPhoneBook is a driven.PhoneBook backed by a map keyed by phone number.
type IndexedPhoneBook struct {
	entries map[int]string
}

// NewIndexedPhoneBook creates an empty indexed phone book.
func NewIndexedPhoneBook() *IndexedPhoneBook {
	return &IndexedPhoneBook{
		entries: make(map[int]string),
	}
}

// Search returns the name stored for phoneNumber.
func (b *IndexedPhoneBook) Search(phoneNumber int) (string, bool) {
	name, ok := b.entries[phoneNumber]
	return name, ok
}

// Add creates an entry if none exists for phoneNumber.
func (b *IndexedPhoneBook) Add(phoneNumber int, name string) bool {
	if _, ok := b.entries[phoneNumber]; ok {
		return false
	}
	b.entries[phoneNumber] = name
	return true
}

// Update replaces the name stored for phoneNumber.
func (b *IndexedPhoneBook) Update(phoneNumber int, name string) (string, bool) {
	previous, ok := b.entries[phoneNumber]
	if !ok {
		return "", false
	}
	b.entries[phoneNumber] = name
	return previous, true
}

// Remove deletes the entry for phoneNumber.
func (b *IndexedPhoneBook) Remove(phoneNumber int) (string, bool) {
	removed, ok := b.entries[phoneNumber]
	if !ok {
		return "", false
	}
	delete(b.entries, phoneNumber)
	return removed, true
}

// Len returns the number of entries.
func (b *IndexedPhoneBook) Len() int {
	return len(b.entries)
}

// Contacts returns a copy of every entry in no particular order.
func (b *IndexedPhoneBook) Contacts() []domain.Contact {
	result := make([]domain.Contact, 0, len(b.entries))
	for number, name := range b.entries {
		result = append(result, domain.Contact{PhoneNumber: number, Name: name})
	}
	return result
}
