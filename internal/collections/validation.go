package collections

import (
	"fmt"
	"strings"
)

// ValidateName checks that a collection name is safe for use as a filename.
// Returns ErrInvalidName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or NUL bytes.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
