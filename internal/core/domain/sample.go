package domain

import (
	"fmt"
	"strings"
)

// SampleSize names one of the bundled sample phone books.
type SampleSize string

// Available sample sizes.
const (
	SampleSmall  SampleSize = "small"
	SampleMedium SampleSize = "medium"
	SampleLarge  SampleSize = "large"
)

// IsValid returns true if the sample size is recognised.
func (s SampleSize) IsValid() bool {
	switch s {
	case SampleSmall, SampleMedium, SampleLarge:
		return true
	default:
		return false
	}
}

// FileName returns the sample file name for this size.
func (s SampleSize) FileName() string {
	return "phoneBook-" + string(s) + ".txt"
}

// ParseSampleSize interprets user input by its first letter.
func ParseSampleSize(s string) (SampleSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "s"):
		return SampleSmall, nil
	case strings.HasPrefix(s, "m"):
		return SampleMedium, nil
	case strings.HasPrefix(s, "l"):
		return SampleLarge, nil
	default:
		return "", fmt.Errorf("%w: sample size %q", ErrUnsupportedType, s)
	}
}

// ImportReport summarises a bulk load of contact records.
type ImportReport struct {
	// Lines is the number of lines read.
	Lines int

	// Added is the number of contacts created.
	Added int

	// Duplicates counts records whose number was already present.
	Duplicates int

	// Skipped counts blank or malformed lines.
	Skipped int
}
