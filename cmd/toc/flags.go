package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	nbtoc "github.com/alnah/go-nbtoc"
)

// commonFlags holds flags controlling configuration and diagnostics.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// tocFlags holds every flag accepted by toc.
type tocFlags struct {
	recursive        bool
	includeFilenames bool
	useBullets       bool
	maxLevel         int
	maxLevelSet      bool // --max-level given explicitly
	output           string
	version          bool
	common           commonFlags
}

// addCommonFlags registers config and diagnostics flags.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress warnings and notices")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-notebook heading counts")
}

// parseFlags parses command-line arguments (program name excluded).
// Returns flag.ErrHelp unwrapped for -h/--help; other parse failures wrap ErrInvalidFlags.
func parseFlags(args []string) (*tocFlags, []string, error) {
	fs := flag.NewFlagSet("toc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &tocFlags{}
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "search subfolders")
	fs.BoolVarP(&f.includeFilenames, "include-filenames", "f", false, "add a bold filename line before each notebook")
	fs.BoolVarP(&f.useBullets, "use-bullets", "b", false, "use * markers instead of 1.")
	fs.IntVarP(&f.maxLevel, "max-level", "l", nbtoc.DefaultMaxLevel, "deepest heading level to include")
	fs.StringVarP(&f.output, "output", "o", "", "write the TOC to a file")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	f.maxLevelSet = fs.Changed("max-level")

	return f, fs.Args(), nil
}
