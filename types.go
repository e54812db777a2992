package nbtoc

import (
	"fmt"
)

// NotebookExt is the file extension of notebook documents (matched case-insensitively).
const NotebookExt = ".ipynb"

// DefaultMaxLevel is the deepest heading level included when none is set.
const DefaultMaxLevel = 2

// Heading is a markdown heading extracted from a notebook.
type Heading struct {
	Level  int    // number of leading '#' characters, >= 1
	Text   string // heading text with links unwrapped and emphasis removed
	Anchor string // URL fragment, unique within the document
}

// Document is a notebook and the headings extracted from it.
type Document struct {
	Path     string    // path as discovered (root joined with the relative path)
	RelPath  string    // path relative to the scanned folder, OS separators
	Headings []Heading // document order
}

// Options configures discovery and TOC rendering.
type Options struct {
	Recursive        bool // descend into subdirectories
	IncludeFilenames bool // emit a bold filename line before each document
	UseBullets       bool // "*" markers instead of "1."
	MaxLevel         int  // deepest heading level to extract (>= 1)
}

// DefaultOptions returns options matching the CLI defaults.
func DefaultOptions() Options {
	return Options{MaxLevel: DefaultMaxLevel}
}

// Validate checks that options are usable.
func (o Options) Validate() error {
	if o.MaxLevel < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxLevel, o.MaxLevel)
	}
	return nil
}

// Warning records a document that was skipped because it could not be processed.
type Warning struct {
	Path string
	Err  error
}
