package collections

import "github.com/alnah/go-iconcss/internal/iconset"

// Loader defines the contract for locating collection data.
// Implementations may load from embedded files, filesystem, S3, database, etc.
type Loader interface {
	// Load returns the raw data of a collection by name.
	// Returns ErrNotFound if no source exists for the name.
	// Returns ErrInvalidName if the name contains invalid characters.
	Load(name string) (*Source, error)
}

// Source is the raw data of one collection.
type Source struct {
	Name   string         // Collection name as requested
	Origin string         // Where the data came from (file path or embedded path)
	Format iconset.Format // Encoding of Data
	Data   []byte
}
