// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-nbtoc/internal/fileutil"
)

// IsFile reports whether a path names an existing regular file.
// Replaced in tests.
var IsFile = fileutil.FileExists

// ForInvalidFolder returns hints for a folder argument that is not a directory.
// Suggests the parent directory when the argument is a file.
func ForInvalidFolder(path string) string {
	if path != "" && IsFile(path) {
		return format("pass the folder containing " + filepath.Base(path) + ", not the file itself")
	}
	return format("check the path exists and is a directory")
}

// ForMaxLevel returns a hint for an out-of-range --max-level.
func ForMaxLevel() string {
	return format("use --max-level 1 to list only top-level (#) headings")
}

// ForMissingInput returns a hint when no folder was given.
func ForMissingInput() string {
	return format("pass a folder path or set input.defaultDir in a config file")
}

// ForNoNotebooks returns a hint when discovery finds nothing.
// Only non-recursive scans get a suggestion.
func ForNoNotebooks(recursive bool) string {
	if recursive {
		return ""
	}
	return format("use --recursive to search subfolders")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-nbtoc/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-nbtoc/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
