package collections

import (
	"embed"
	"fmt"

	"github.com/alnah/go-iconcss/internal/iconset"
)

//go:embed data/*.json
var bundled embed.FS

// EmbeddedLoader loads collections bundled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load loads a bundled collection by name.
func (e *EmbeddedLoader) Load(name string) (*Source, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	path := "data/" + name + ".json"
	data, err := bundled.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return &Source{
		Name:   name,
		Origin: "embedded:" + path,
		Format: iconset.FormatJSON,
		Data:   data,
	}, nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
