package nbtoc

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alnah/go-nbtoc/internal/fileutil"
)

// Generator runs discovery, extraction and rendering for a folder.
// Documents are processed one at a time; a document that cannot be read
// or parsed is reported as a warning and left out of the TOC.
type Generator struct {
	warnings io.Writer
	verbose  io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithWarningWriter sets where per-document warnings are written.
// Warnings are discarded by default; they are always returned in Result.
func WithWarningWriter(w io.Writer) Option {
	return func(g *Generator) {
		if w != nil {
			g.warnings = w
		}
	}
}

// WithVerboseWriter enables progress output (notebook count, headings per
// document) on w.
func WithVerboseWriter(w io.Writer) Option {
	return func(g *Generator) {
		if w != nil {
			g.verbose = w
		}
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		warnings: io.Discard,
		verbose:  io.Discard,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result is the outcome of a Generate call.
type Result struct {
	Documents []Document // every discovered notebook, in TOC order
	Warnings  []Warning  // documents skipped because of errors
	Markdown  string     // rendered TOC, no trailing newline
}

// Generate builds the table of contents for the notebooks in root.
// The folder is checked before options; ErrNoNotebooks is returned when
// discovery finds nothing. The context is checked between documents.
func (g *Generator) Generate(ctx context.Context, root string, opts Options) (*Result, error) {
	if !fileutil.DirExists(root) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFolder, root)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}
	paths, err := findNotebooks(root, opts.Recursive, func(path string, err error) {
		g.warn(result, Warning{Path: path, Err: err})
	})
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoNotebooks, root)
	}
	fmt.Fprintf(g.verbose, "Found %d notebook(s) in %s\n", len(paths), root)

	result.Documents = make([]Document, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc := Document{Path: path, RelPath: relativePath(root, path)}
		headings, err := ExtractFile(path, opts.MaxLevel)
		if err != nil {
			g.warn(result, Warning{Path: path, Err: err})
		} else {
			doc.Headings = headings
		}
		fmt.Fprintf(g.verbose, "%s: %d heading(s)\n", doc.RelPath, len(doc.Headings))
		result.Documents = append(result.Documents, doc)
	}

	result.Markdown = Render(result.Documents, opts)
	return result, nil
}

// warn records w and writes it to the warning writer.
func (g *Generator) warn(result *Result, w Warning) {
	result.Warnings = append(result.Warnings, w)
	fmt.Fprintln(g.warnings, w.String())
}

// String formats the warning for display.
func (w Warning) String() string {
	switch {
	case errors.Is(w.Err, ErrNotebookNotFound):
		return fmt.Sprintf("Warning: File not found %s", w.Path)
	case errors.Is(w.Err, ErrDecodeNotebook):
		return fmt.Sprintf("Warning: Could not decode JSON from %s", w.Path)
	default:
		return fmt.Sprintf("Warning: Error processing %s: %v", w.Path, w.Err)
	}
}
