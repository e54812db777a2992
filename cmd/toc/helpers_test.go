package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// newTestEnv returns an Environment backed by buffers and the given variables.
func newTestEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		LookupEnv: func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		},
		Environ: func() []string {
			list := make([]string, 0, len(vars))
			for k, v := range vars {
				list = append(list, k+"="+v)
			}
			sort.Strings(list)
			return list
		},
	}
	return env, &stdout, &stderr
}

// writeTestFile writes content to root/rel, creating parent directories.
func writeTestFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("creating directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", rel, err)
	}
	return path
}

// notebookJSON returns notebook JSON with one markdown cell per source.
func notebookJSON(sources ...string) string {
	cells := make([]string, len(sources))
	for i, s := range sources {
		cells[i] = fmt.Sprintf(`{"cell_type":"markdown","metadata":{},"source":%q}`, s)
	}
	return `{"cells":[` + strings.Join(cells, ",") + `],"nbformat":4}`
}

// courseFolder creates a folder with two notebooks and a nested one.
func courseFolder(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "intro.ipynb", notebookJSON("# Intro\n## Setup\n### Details"))
	writeTestFile(t, dir, "basics.ipynb", notebookJSON("# Basics", "## Types\n## Types"))
	writeTestFile(t, dir, "extra/more.ipynb", notebookJSON("# More"))
	writeTestFile(t, dir, "notes.md", "# Not a notebook")
	return dir
}
