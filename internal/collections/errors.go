package collections

import "errors"

// Sentinel errors for collection loading.
var (
	// ErrNotFound indicates no source exists for the requested collection.
	ErrNotFound = errors.New("collection not found")

	// ErrInvalidName indicates the collection name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidName = errors.New("invalid collection name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrRead indicates an I/O error occurred while reading an existing source.
	ErrRead = errors.New("failed to read collection")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
