package collections

import (
	"errors"
)

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the collection is not found in the custom location.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded collections are used.
// If customBasePath is set, custom collections take precedence with fallback to embedded.
// Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// Load loads a collection, trying the custom loader first if available.
func (r *Resolver) Load(name string) (*Source, error) {
	if r.custom == nil {
		return r.embedded.Load(name)
	}

	src, err := r.custom.Load(name)
	if err == nil {
		return src, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return r.embedded.Load(name)
}

// HasCustomLoader returns true if a custom collection directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
