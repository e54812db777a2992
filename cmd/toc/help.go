package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: toc <folder_path> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a Markdown table of contents from the headings of .ipynb notebooks.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  folder_path    Folder to scan (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -r, --recursive           Search subfolders")
	fmt.Fprintln(w, "  -f, --include-filenames   Add a bold filename line before each notebook")
	fmt.Fprintln(w, "  -b, --use-bullets         Use * markers instead of 1.")
	fmt.Fprintln(w, "  -l, --max-level <n>       Deepest heading level to include (default 2)")
	fmt.Fprintln(w, "  -o, --output <path>       Write the TOC to a file instead of stdout")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Suppress warnings and notices")
	fmt.Fprintln(w, "  -v, --verbose             Show per-notebook heading counts")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  NBTOC_CONFIG       Config file name or path")
	fmt.Fprintln(w, "  NBTOC_INPUT_DIR    Folder scanned when no argument is given")
	fmt.Fprintln(w, "  NBTOC_OUTPUT       Output file path")
	fmt.Fprintln(w, "  NBTOC_MAX_LEVEL    Deepest heading level to include")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
}
