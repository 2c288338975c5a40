// Package memory provides in-memory implementations of driven.PhoneBook.
//
//   - IndexedPhoneBook: hash index keyed by phone number, expected O(1)
//   - ScanningPhoneBook: unordered list of contacts, O(n) linear scan
//
// ConfigStore is an in-memory driven.ConfigStore for runs without a
// writable config directory.
//
// Neither type locks. Wrap a book with Synchronized when more than one
// goroutine calls it.
package memory
