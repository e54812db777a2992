package nbtoc

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FindNotebooks lists notebook files in root, sorted by path. In recursive
// mode every subdirectory is searched and unreadable ones are skipped.
// Symbolic links to directories are never followed.
func FindNotebooks(root string, recursive bool) ([]string, error) {
	return findNotebooks(root, recursive, nil)
}

// findNotebooks implements FindNotebooks. onSkip, when non-nil, is called for
// every directory the recursive walk could not read.
func findNotebooks(root string, recursive bool, onSkip func(path string, err error)) ([]string, error) {
	var paths []string
	var err error
	if recursive {
		paths, err = walkNotebooks(root, onSkip)
	} else {
		paths, err = listNotebooks(root)
	}
	if err != nil {
		return nil, err
	}

	slices.SortFunc(paths, comparePaths)
	return paths, nil
}

// listNotebooks returns notebooks directly inside root.
func listNotebooks(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}

	var paths []string
	for _, entry := range entries {
		if !hasNotebookExt(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if isRegularFile(path, entry) {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// walkNotebooks returns notebooks at any depth below root.
func walkNotebooks(root string, onSkip func(path string, err error)) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if onSkip != nil {
				onSkip(path, err)
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasNotebookExt(d.Name()) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return nil
			}
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// isRegularFile reports whether path is a regular file, following symlinks.
func isRegularFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// hasNotebookExt reports whether name ends in .ipynb, ignoring case.
func hasNotebookExt(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), NotebookExt)
}

// comparePaths orders paths component by component, so "a/z" sorts
// before "a-b" even though '/' is greater than '-'.
func comparePaths(a, b string) int {
	return slices.Compare(
		strings.Split(filepath.ToSlash(a), "/"),
		strings.Split(filepath.ToSlash(b), "/"),
	)
}

// relativePath returns path relative to root, or its base name when no
// relative path exists.
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.Base(path)
	}
	return rel
}
