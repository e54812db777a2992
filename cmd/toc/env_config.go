package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-nbtoc/internal/config"
)

// ErrInvalidEnv is returned when a recognized environment variable has an unusable value.
var ErrInvalidEnv = errors.New("invalid environment variable")

// envPrefix is shared by all recognized variables.
const envPrefix = "NBTOC_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // NBTOC_CONFIG: config file name or path
	InputDir    string // NBTOC_INPUT_DIR: folder scanned when no argument is given
	OutputPath  string // NBTOC_OUTPUT: output file path
	MaxLevel    int    // NBTOC_MAX_LEVEL: deepest heading level
	MaxLevelSet bool
}

// knownEnvVars lists valid NBTOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NBTOC_CONFIG":    true,
	"NBTOC_INPUT_DIR": true,
	"NBTOC_OUTPUT":    true,
	"NBTOC_MAX_LEVEL": true,
}

// loadEnvConfig reads configuration from environment variables.
// An NBTOC_MAX_LEVEL that is not an integer is an error; range checks
// happen later with the other options.
func loadEnvConfig(lookup func(string) (string, bool)) (*envConfig, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	cfg := &envConfig{
		ConfigPath: get("NBTOC_CONFIG"),
		InputDir:   get("NBTOC_INPUT_DIR"),
		OutputPath: get("NBTOC_OUTPUT"),
	}

	if raw := strings.TrimSpace(get("NBTOC_MAX_LEVEL")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: NBTOC_MAX_LEVEL=%q is not an integer", ErrInvalidEnv, raw)
		}
		cfg.MaxLevel = n
		cfg.MaxLevelSet = true
	}

	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized NBTOC_* variables.
// Helps catch typos like NBTOC_MAXLEVEL instead of NBTOC_MAX_LEVEL.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config values with the environment variables that are set.
// CLI flags are applied afterwards in resolveOptions, which gives:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputPath != "" {
		cfg.Output.Path = env.OutputPath
	}
}
