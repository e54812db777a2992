package main

import "errors"

// Exit codes for the toc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // TOC produced, or no notebooks found
	ExitGeneral = 1 // Invalid folder, max level, config, or output write
	ExitUsage   = 2 // Invalid flags or environment values
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidEnv) {
		return ExitUsage
	}

	return ExitGeneral
}
