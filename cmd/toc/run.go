package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	nbtoc "github.com/alnah/go-nbtoc"
	"github.com/alnah/go-nbtoc/internal/config"
	"github.com/alnah/go-nbtoc/internal/fileutil"
	"github.com/alnah/go-nbtoc/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("folder path is required")
	ErrInvalidFlags = errors.New("invalid arguments")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// FolderError reports a folder argument that is missing or not a directory.
type FolderError struct {
	Path string
	Err  error
}

func (e *FolderError) Error() string { return e.Err.Error() }
func (e *FolderError) Unwrap() error { return e.Err }

// OutputError reports a failure to write the TOC file.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing to output file %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrWriteOutput) match any OutputError.
func (e *OutputError) Is(target error) bool { return target == ErrWriteOutput }

// runTOC resolves configuration, generates the TOC and writes it out.
func runTOC(ctx context.Context, positional []string, flags *tocFlags, env *Environment) error {
	envCfg, err := loadEnvConfig(env.LookupEnv)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	folder, err := resolveFolder(positional, cfg)
	if err != nil {
		return err
	}
	opts := resolveOptions(flags, envCfg, cfg)
	output := flags.output
	if output == "" {
		output = cfg.Output.Path
	}

	var genOpts []nbtoc.Option
	if !flags.common.quiet {
		genOpts = append(genOpts, nbtoc.WithWarningWriter(env.Stderr))
	}
	if flags.common.verbose {
		genOpts = append(genOpts, nbtoc.WithVerboseWriter(env.Stderr))
	}

	result, err := nbtoc.NewGenerator(genOpts...).Generate(ctx, folder, opts)
	switch {
	case errors.Is(err, nbtoc.ErrNoNotebooks):
		printNoNotebooks(env, folder, opts.Recursive, flags.common.quiet)
		return nil
	case errors.Is(err, nbtoc.ErrInvalidFolder):
		return &FolderError{Path: folder, Err: err}
	case err != nil:
		return err
	}

	if output == "" {
		fmt.Fprintln(env.Stdout, result.Markdown)
		return nil
	}

	if err := fileutil.WriteFile(output, []byte(result.Markdown+"\n")); err != nil {
		return &OutputError{Path: output, Err: err}
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "TOC successfully written to %s\n", output)
	}
	return nil
}

// loadConfig loads the config named by the flag, falling back to the
// environment. With neither set the default config is returned.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	return cfg, nil
}

// resolveFolder picks the folder to scan: the positional argument, else
// input.defaultDir.
func resolveFolder(positional []string, cfg *config.Config) (string, error) {
	switch len(positional) {
	case 0:
		if cfg.Input.DefaultDir == "" {
			return "", ErrNoInput
		}
		return cfg.Input.DefaultDir, nil
	case 1:
		return positional[0], nil
	default:
		return "", fmt.Errorf("%w: expected one folder path, got %d", ErrInvalidFlags, len(positional))
	}
}

// resolveOptions merges flags, environment and config into generator options.
// Boolean flags can only turn a setting on.
func resolveOptions(flags *tocFlags, env *envConfig, cfg *config.Config) nbtoc.Options {
	opts := nbtoc.DefaultOptions()
	opts.Recursive = flags.recursive || cfg.Input.Recursive
	opts.IncludeFilenames = flags.includeFilenames || cfg.TOC.IncludeFilenames
	opts.UseBullets = flags.useBullets || cfg.TOC.UseBullets

	switch {
	case flags.maxLevelSet:
		opts.MaxLevel = flags.maxLevel
	case env.MaxLevelSet:
		opts.MaxLevel = env.MaxLevel
	case cfg.TOC.MaxLevel != 0:
		opts.MaxLevel = cfg.TOC.MaxLevel
	}
	return opts
}

// printNoNotebooks reports an empty scan on stderr. It is not an error.
func printNoNotebooks(env *Environment, folder string, recursive, quiet bool) {
	suffix := ""
	if recursive {
		suffix = " recursively"
	}
	fmt.Fprintf(env.Stderr, "No %s files found in %s%s.\n", nbtoc.NotebookExt, folder, suffix)
	if hint := hints.ForNoNotebooks(recursive); hint != "" && !quiet {
		fmt.Fprintln(env.Stderr, strings.TrimPrefix(hint, "\n"))
	}
}

// formatError renders a fatal error for stderr, with a hint when one applies.
func formatError(err error) string {
	var folderErr *FolderError
	var outputErr *OutputError

	switch {
	case errors.As(err, &folderErr):
		return "Error: Folder not found or is not a directory: " + folderErr.Path + hints.ForInvalidFolder(folderErr.Path)
	case errors.Is(err, nbtoc.ErrInvalidMaxLevel):
		return "Error: Max level must be at least 1." + hints.ForMaxLevel()
	case errors.As(err, &outputErr):
		return fmt.Sprintf("Error writing to output file %s: %v", outputErr.Path, outputErr.Err) + hints.ForOutputDirectory()
	case errors.Is(err, ErrNoInput):
		return "Error: " + err.Error() + hints.ForMissingInput()
	default:
		return "Error: " + err.Error()
	}
}
