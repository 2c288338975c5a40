package memory

import (
	"container/list"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driven"
)

// Ensure ScanningPhoneBook implements the interface.
var _ driven.PhoneBook = (*ScanningPhoneBook)(nil)

// ScanningPhoneBook is a driven.PhoneBook backed by an unordered list of
// contacts. Every operation walks the list from the front and stops at the
// first contact with a matching number.
type ScanningPhoneBook struct {
	contacts *list.List
}

// NewScanningPhoneBook creates an empty scanning phone book.
func NewScanningPhoneBook() *ScanningPhoneBook {
	return &ScanningPhoneBook{
		contacts: list.New(),
	}
}

// find returns the list element holding phoneNumber, or nil.
func (b *ScanningPhoneBook) find(phoneNumber int) *list.Element {
	for e := b.contacts.Front(); e != nil; e = e.Next() {
		if e.Value.(*domain.Contact).PhoneNumber == phoneNumber {
			return e
		}
	}
	return nil
}

// Search returns the name stored for phoneNumber.
func (b *ScanningPhoneBook) Search(phoneNumber int) (string, bool) {
	e := b.find(phoneNumber)
	if e == nil {
		return "", false
	}
	return e.Value.(*domain.Contact).Name, true
}

// Add appends a contact if none exists for phoneNumber.
func (b *ScanningPhoneBook) Add(phoneNumber int, name string) bool {
	if b.find(phoneNumber) != nil {
		return false
	}
	b.contacts.PushBack(&domain.Contact{PhoneNumber: phoneNumber, Name: name})
	return true
}

// Update renames the contact for phoneNumber in place.
func (b *ScanningPhoneBook) Update(phoneNumber int, name string) (string, bool) {
	e := b.find(phoneNumber)
	if e == nil {
		return "", false
	}
	c := e.Value.(*domain.Contact)
	previous := c.Name
	c.Name = name
	return previous, true
}

// Remove unlinks the contact for phoneNumber.
func (b *ScanningPhoneBook) Remove(phoneNumber int) (string, bool) {
	e := b.find(phoneNumber)
	if e == nil {
		return "", false
	}
	return b.contacts.Remove(e).(*domain.Contact).Name, true
}

// Len returns the number of contacts.
func (b *ScanningPhoneBook) Len() int {
	return b.contacts.Len()
}

// Contacts returns a copy of every contact in insertion order.
func (b *ScanningPhoneBook) Contacts() []domain.Contact {
	result := make([]domain.Contact, 0, b.contacts.Len())
	for e := b.contacts.Front(); e != nil; e = e.Next() {
		result = append(result, *e.Value.(*domain.Contact))
	}
	return result
}
