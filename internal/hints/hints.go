// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-iconcss/internal/fileutil"
)

// IconifyPackagesDir is where npm installs @iconify-json/* collections.
const IconifyPackagesDir = "node_modules/@iconify-json"

// HasIconifyPackages detects installed @iconify-json packages in the working directory.
var HasIconifyPackages = func() bool {
	return fileutil.DirExists(IconifyPackagesDir)
}

// ForCollectionNotFound returns hints for a collection that no provider has.
// Suggests the installed package directory when one exists and --collections is unset.
func ForCollectionNotFound(name, collectionsPath string) string {
	var hints []string

	if collectionsPath == "" {
		if HasIconifyPackages() {
			hints = append(hints, "use --collections "+IconifyPackagesDir)
		} else {
			hints = append(hints, "use --collections DIR")
		}
	}
	if name != "" {
		hints = append(hints, "install with: npm i -D @iconify-json/"+name)
	}

	return formatHints(hints)
}

// ForCollectionPath returns hints for an unusable --collections directory.
func ForCollectionPath() string {
	return format("expected a directory holding NAME.json, NAME.yaml or NAME/icons.json")
}

// ForMalformedCollection returns hints for a collection that cannot be parsed.
func ForMalformedCollection() string {
	return format("collections must use the Iconify JSON format; use --lenient to skip broken ones")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-iconcss/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-iconcss") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
