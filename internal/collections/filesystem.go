package collections

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-iconcss/internal/iconset"
)

// candidate is one place a collection may live below the base path.
type candidate struct {
	path   func(name string) string
	format iconset.Format
}

// candidates are tried in order; the first existing file wins.
var candidates = []candidate{
	{path: func(name string) string { return filepath.Join(name, "icons.json") }, format: iconset.FormatJSON},
	{path: func(name string) string { return name + ".json" }, format: iconset.FormatJSON},
	{path: func(name string) string { return name + ".yaml" }, format: iconset.FormatYAML},
	{path: func(name string) string { return name + ".yml" }, format: iconset.FormatYAML},
}

// FilesystemLoader loads collections from a directory on the filesystem.
// Implements Loader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path so containment checks compare real paths
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// BasePath returns the resolved absolute base directory.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// Load reads the first existing candidate file for the collection.
func (f *FilesystemLoader) Load(name string) (*Source, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	for _, c := range candidates {
		filePath := filepath.Join(f.basePath, c.path(name))

		if err := f.verifyPathContainment(filePath); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}

		return &Source{
			Name:   name,
			Origin: filePath,
			Format: c.format,
			Data:   data,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, name, f.basePath)
}

// verifyPathContainment ensures the resolved file path is within basePath.
// Resolves symlinks to prevent escape via symlink pointing outside basePath.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// If EvalSymlinks fails (file missing), keep the cleaned path; the read
	// fails anyway and the prefix check still applies.
	realPath, err := filepath.EvalSymlinks(absFilePath)
	if err == nil {
		absFilePath = realPath
	}

	// Trailing separator prevents prefix attacks (/base/path vs /base/pathevil)
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
