package nbtoc

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidFolder   = errors.New("folder not found or is not a directory")
	ErrInvalidMaxLevel = errors.New("max level must be at least 1")
	ErrNoNotebooks     = errors.New("no notebook files found")

	// Per-document errors. Generator reports these as warnings and
	// continues with the next document.
	ErrNotebookNotFound = errors.New("notebook file not found")
	ErrReadNotebook     = errors.New("failed to read notebook")
	ErrDecodeNotebook   = errors.New("could not decode notebook JSON")
	ErrNotebookShape    = errors.New("unexpected notebook structure")
)
