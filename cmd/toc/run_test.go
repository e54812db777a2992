package main

// Notes:
// - Config precedence is tested end to end with a config file passed by path,
//   so no test needs to change the working directory.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	nbtoc "github.com/alnah/go-nbtoc"
	"github.com/alnah/go-nbtoc/internal/config"
)

// ---------------------------------------------------------------------------
// resolveOptions / resolveFolder
// ---------------------------------------------------------------------------

func TestResolveOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags tocFlags
		env   envConfig
		cfg   config.Config
		want  nbtoc.Options
	}{
		{
			name:  "defaults",
			flags: tocFlags{maxLevel: nbtoc.DefaultMaxLevel},
			want:  nbtoc.Options{MaxLevel: nbtoc.DefaultMaxLevel},
		},
		{
			name:  "config enables booleans and level",
			flags: tocFlags{maxLevel: nbtoc.DefaultMaxLevel},
			cfg: config.Config{
				Input: config.InputConfig{Recursive: true},
				TOC:   config.TOCConfig{IncludeFilenames: true, UseBullets: true, MaxLevel: 4},
			},
			want: nbtoc.Options{Recursive: true, IncludeFilenames: true, UseBullets: true, MaxLevel: 4},
		},
		{
			name:  "flags enable booleans",
			flags: tocFlags{recursive: true, includeFilenames: true, useBullets: true, maxLevel: nbtoc.DefaultMaxLevel},
			want:  nbtoc.Options{Recursive: true, IncludeFilenames: true, UseBullets: true, MaxLevel: nbtoc.DefaultMaxLevel},
		},
		{
			name:  "env level beats config",
			flags: tocFlags{maxLevel: nbtoc.DefaultMaxLevel},
			env:   envConfig{MaxLevel: 1, MaxLevelSet: true},
			cfg:   config.Config{TOC: config.TOCConfig{MaxLevel: 4}},
			want:  nbtoc.Options{MaxLevel: 1},
		},
		{
			name:  "explicit flag beats env and config",
			flags: tocFlags{maxLevel: 2, maxLevelSet: true},
			env:   envConfig{MaxLevel: 1, MaxLevelSet: true},
			cfg:   config.Config{TOC: config.TOCConfig{MaxLevel: 4}},
			want:  nbtoc.Options{MaxLevel: 2},
		},
		{
			name:  "invalid env level is passed through for validation",
			flags: tocFlags{maxLevel: nbtoc.DefaultMaxLevel},
			env:   envConfig{MaxLevel: 0, MaxLevelSet: true},
			want:  nbtoc.Options{MaxLevel: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOptions(&tt.flags, &tt.env, &tt.cfg)
			if got != tt.want {
				t.Errorf("resolveOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveFolder(t *testing.T) {
	t.Parallel()

	withDefault := &config.Config{Input: config.InputConfig{DefaultDir: "notebooks"}}

	tests := []struct {
		name       string
		positional []string
		cfg        *config.Config
		want       string
		wantErr    error
	}{
		{"positional", []string{"course"}, config.DefaultConfig(), "course", nil},
		{"positional beats default", []string{"course"}, withDefault, "course", nil},
		{"config default", nil, withDefault, "notebooks", nil},
		{"nothing", nil, config.DefaultConfig(), "", ErrNoInput},
		{"too many", []string{"a", "b"}, config.DefaultConfig(), "", ErrInvalidFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveFolder(tt.positional, tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("resolveFolder() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveFolder() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

func TestOutputError(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := error(&OutputError{Path: "out/TOC.md", Err: cause})

	if !errors.Is(err, ErrWriteOutput) {
		t.Error("OutputError should match ErrWriteOutput")
	}
	if !errors.Is(err, cause) {
		t.Error("OutputError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "out/TOC.md") {
		t.Errorf("Error() = %q, should name the path", err.Error())
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantPrefix string
	}{
		{
			name:       "max level",
			err:        nbtoc.ErrInvalidMaxLevel,
			wantPrefix: "Error: Max level must be at least 1.",
		},
		{
			name:       "output",
			err:        &OutputError{Path: "TOC.md", Err: errors.New("read-only file system")},
			wantPrefix: "Error writing to output file TOC.md: read-only file system",
		},
		{
			name:       "no input",
			err:        ErrNoInput,
			wantPrefix: "Error: folder path is required",
		},
		{
			name:       "other",
			err:        errors.New("boom"),
			wantPrefix: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatError(tt.err); !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("formatError() = %q, want prefix %q", got, tt.wantPrefix)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Config and environment integration
// ---------------------------------------------------------------------------

func TestRunMain_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := courseFolder(t)
	out := filepath.Join(t.TempDir(), "TOC.md")
	cfgPath := writeTestFile(t, t.TempDir(), "toc.yaml",
		"input:\n  defaultDir: "+dir+"\n  recursive: true\n"+
			"toc:\n  useBullets: true\n  maxLevel: 1\n"+
			"output:\n  path: "+out+"\n")

	env, stdout, stderr := newTestEnv(nil)
	code := runMain(context.Background(), []string{"-c", cfgPath}, env)

	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d (stderr: %q)", code, ExitSuccess, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "# Table of Contents\n" +
		"* [Basics](basics.ipynb#Basics)\n" +
		"* [More](extra/more.ipynb#More)\n" +
		"* [Intro](intro.ipynb#Intro)\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
	if !strings.HasPrefix(stdout.String(), "TOC successfully written to ") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunMain_EnvOverridesConfig(t *testing.T) {
	t.Parallel()

	dir := courseFolder(t)
	cfgPath := writeTestFile(t, t.TempDir(), "toc.yaml", "toc:\n  maxLevel: 1\n")

	env, stdout, stderr := newTestEnv(map[string]string{
		"NBTOC_CONFIG":    cfgPath,
		"NBTOC_INPUT_DIR": dir,
		"NBTOC_MAX_LEVEL": "2",
		"NBTOC_BULLETS":   "1",
	})
	code := runMain(context.Background(), nil, env)

	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d (stderr: %q)", code, ExitSuccess, stderr.String())
	}
	if !strings.Contains(stdout.String(), "    1. [Setup](intro.ipynb#Setup)") {
		t.Errorf("NBTOC_MAX_LEVEL=2 should include level-2 headings, got %q", stdout.String())
	}
	if want := "warning: unknown environment variable NBTOC_BULLETS (typo?)\n"; stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestRunMain_ConfigErrors(t *testing.T) {
	t.Parallel()

	dir := courseFolder(t)
	badCfg := writeTestFile(t, t.TempDir(), "bad.yaml", "toc:\n  depth: 3\n")

	tests := []struct {
		name     string
		args     []string
		vars     map[string]string
		wantCode int
		wantIn   []string
	}{
		{
			name:     "unknown field",
			args:     []string{dir, "-c", badCfg},
			wantCode: ExitGeneral,
			wantIn:   []string{"Error: failed to parse config"},
		},
		{
			name:     "missing config path",
			args:     []string{dir, "-c", filepath.Join(dir, "none.yaml")},
			wantCode: ExitGeneral,
			wantIn:   []string{"Error: config file not found"},
		},
		{
			name:     "missing config name",
			args:     []string{dir, "-c", "no-such-nbtoc-config"},
			wantCode: ExitGeneral,
			wantIn:   []string{"Error: config file not found", "hint: use --config"},
		},
		{
			name:     "invalid env max level",
			args:     []string{dir},
			vars:     map[string]string{"NBTOC_MAX_LEVEL": "deep"},
			wantCode: ExitUsage,
			wantIn:   []string{"Error: invalid environment variable"},
		},
		{
			name:     "env max level below 1",
			args:     []string{dir},
			vars:     map[string]string{"NBTOC_MAX_LEVEL": "0"},
			wantCode: ExitGeneral,
			wantIn:   []string{"Error: Max level must be at least 1."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := newTestEnv(tt.vars)
			code := runMain(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %q)", code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantIn {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}
