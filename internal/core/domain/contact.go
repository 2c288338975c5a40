package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Contact associates a phone number with the name of its owner.
// The phone number is the unique key within a directory.
type Contact struct {
	PhoneNumber int    `json:"phone_number"`
	Name        string `json:"name"`
}

// String renders the contact as "number, name".
func (c Contact) String() string {
	return fmt.Sprintf("%d, %s", c.PhoneNumber, c.Name)
}

// ParsePhoneNumber parses user input into a phone number.
// Surrounding whitespace is ignored.
func ParsePhoneNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a legal phone number", ErrInvalidInput, s)
	}
	return n, nil
}
