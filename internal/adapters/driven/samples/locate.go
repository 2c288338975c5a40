package samples

import (
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
)

// Path returns the location of the sample phone book of the given size
// inside dir.
func Path(dir string, size domain.SampleSize) (string, error) {
	if !size.IsValid() {
		return "", fmt.Errorf("%w: sample size %q", domain.ErrUnsupportedType, size)
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, size.FileName()), nil
}
