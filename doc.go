// Package nbtoc builds a Markdown table of contents from Jupyter notebooks.
//
// # Quick Start
//
// Create a generator and point it at a folder of .ipynb files:
//
//	gen := nbtoc.NewGenerator(nbtoc.WithWarningWriter(os.Stderr))
//
//	result, err := gen.Generate(ctx, "notebooks", nbtoc.Options{
//	    Recursive: true,
//	    MaxLevel:  2,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Markdown)
//
// # Pipeline
//
// Generation runs three sequential stages:
//
//  1. Discovery: .ipynb files in the folder (optionally recursive), sorted by path
//  2. Extraction: '#' headings from markdown cells, up to Options.MaxLevel
//  3. Rendering: one nested list item per heading, linking to its anchor
//
// A notebook that cannot be read or decoded is reported as a Warning and
// contributes no entries; the remaining notebooks are still processed.
//
// # Anchors
//
// Anchors keep the heading's case, drop punctuation other than ':' and '-',
// and replace whitespace runs with '-'. Repeated anchors within a notebook
// get "-1", "-2", ... suffixes. Counters are never shared between notebooks.
//
// # Lower-level API
//
// ExtractHeadings, Render and AnchorTable can be used directly when the
// notebooks do not come from a folder on disk.
package nbtoc
