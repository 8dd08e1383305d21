package iconcss

import (
	"errors"
	"fmt"

	"github.com/alnah/go-iconcss/internal/collections"
	"github.com/alnah/go-iconcss/internal/iconset"
	"github.com/alnah/go-iconcss/internal/store"
)

// CollectionFormat identifies the encoding of collection data.
type CollectionFormat int

const (
	// CollectionJSON is the Iconify JSON collection format.
	CollectionJSON CollectionFormat = iota
	// CollectionYAML is the same structure encoded as YAML.
	CollectionYAML
)

// CollectionSource is the raw data of one icon collection.
type CollectionSource struct {
	Name   string           // Collection name
	Origin string           // Where the data came from, for messages
	Format CollectionFormat // Encoding of Data
	Data   []byte
}

// CollectionLoader provides raw collection data by name.
// Implementations may load from filesystem, embedded data, S3, database, etc.
//
// The library provides NewCollectionLoader() for directory-based loading with
// fallback to bundled collections. Implement this interface for custom backends.
type CollectionLoader interface {
	// LoadCollection returns the data of a collection.
	// Returns an error matching ErrCollectionNotFound if no such collection
	// exists. Any other error is treated as a broken installation.
	LoadCollection(name string) (*CollectionSource, error)
}

// NewCollectionLoader creates a CollectionLoader for the given base path.
// If basePath is empty, returns a loader using only bundled collections.
// If basePath is set, its collections take precedence with fallback to bundled.
//
// For a collection named "mdi" the directory may contain any of:
//   - mdi/icons.json (the @iconify-json/mdi package layout)
//   - mdi.json
//   - mdi.yaml or mdi.yml
//
// Returns ErrInvalidCollectionPath if basePath is set but not a valid, readable directory.
func NewCollectionLoader(basePath string) (CollectionLoader, error) {
	resolver, err := collections.NewResolver(basePath)
	if err != nil {
		return nil, convertCollectionError(err)
	}
	return &collectionLoaderAdapter{loader: resolver}, nil
}

// collectionLoaderAdapter wraps an internal loader to return public types.
type collectionLoaderAdapter struct {
	loader collections.Loader
}

func (a *collectionLoaderAdapter) LoadCollection(name string) (*CollectionSource, error) {
	src, err := a.loader.Load(name)
	if err != nil {
		return nil, convertCollectionError(err)
	}
	format := CollectionJSON
	if src.Format == iconset.FormatYAML {
		format = CollectionYAML
	}
	return &CollectionSource{
		Name:   src.Name,
		Origin: src.Origin,
		Format: format,
		Data:   src.Data,
	}, nil
}

// publicToInternalAdapter wraps a public CollectionLoader to the internal interface.
type publicToInternalAdapter struct {
	pub CollectionLoader
}

func (a *publicToInternalAdapter) Load(name string) (*collections.Source, error) {
	src, err := a.pub.LoadCollection(name)
	if err != nil {
		if errors.Is(err, ErrCollectionNotFound) {
			return nil, fmt.Errorf("%w: %v", collections.ErrNotFound, err)
		}
		return nil, fmt.Errorf("%w: %v", collections.ErrRead, err)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: %q: loader returned no source", collections.ErrRead, name)
	}

	format := iconset.FormatJSON
	if src.Format == CollectionYAML {
		format = iconset.FormatYAML
	}
	origin := src.Origin
	if origin == "" {
		origin = "loader:" + name
	}
	return &collections.Source{
		Name:   name,
		Origin: origin,
		Format: format,
		Data:   src.Data,
	}, nil
}

// convertCollectionError maps internal collection and store errors to public errors.
func convertCollectionError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, collections.ErrNotFound),
		errors.Is(err, collections.ErrInvalidName),
		errors.Is(err, store.ErrAbsent):
		return wrapError(ErrCollectionNotFound, err)
	case errors.Is(err, collections.ErrInvalidBasePath),
		errors.Is(err, collections.ErrPathTraversal):
		return wrapError(ErrInvalidCollectionPath, err)
	case errors.Is(err, collections.ErrRead),
		errors.Is(err, store.ErrUnreadable):
		return wrapError(ErrCollectionRead, err)
	case errors.Is(err, store.ErrMalformed):
		return wrapError(ErrDatasetMalformed, err)
	default:
		return err
	}
}
