package driven

// PhoneBook maps phone numbers to names.
//
// Every mutation behaves as if it first searched for the number: the
// found/not-found outcome alone decides whether state changes. Add never
// overwrites an existing entry, and Update and Remove leave the book
// untouched when the number is absent. A book holds at most one entry per
// phone number.
//
// Implementations are not safe for concurrent use unless documented
// otherwise.
type PhoneBook interface {
	// Search returns the name stored for phoneNumber.
	// ok is false if no entry exists.
	Search(phoneNumber int) (name string, ok bool)

	// Add creates an entry if none exists for phoneNumber.
	// Returns false, leaving the existing entry unchanged, otherwise.
	Add(phoneNumber int, name string) bool

	// Update replaces the name stored for phoneNumber and returns the
	// name it replaced. ok is false if no entry exists.
	Update(phoneNumber int, name string) (previous string, ok bool)

	// Remove deletes the entry for phoneNumber and returns its name.
	// ok is false if no entry exists.
	Remove(phoneNumber int) (removed string, ok bool)
}
