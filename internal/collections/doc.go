// Package collections locates raw icon collection data by collection name.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - collections bundled with go:embed
//	    ├── FilesystemLoader  - collections from a directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Loaders only find and read bytes; parsing belongs to package iconset.
// A missing collection is reported as ErrNotFound so callers can tell absence
// apart from I/O failures (ErrRead) and bad names (ErrInvalidName).
//
// # Directory Structure
//
// FilesystemLoader accepts the layout of the @iconify-json packages as well as
// flat files. For a collection named "mdi" it tries, in order:
//
//	{basePath}/mdi/icons.json
//	{basePath}/mdi.json
//	{basePath}/mdi.yaml
//	{basePath}/mdi.yml
//
// # Security
//
// Collection names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package collections
