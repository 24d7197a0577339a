package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-md2word/internal/config"
)

// fakeClipboard records what was copied. Set htmlErr or textErr to fail.
type fakeClipboard struct {
	mu      sync.Mutex
	html    string
	text    string
	htmlErr error
	textErr error
}

func (f *fakeClipboard) WriteHTML(_ context.Context, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.htmlErr != nil {
		return f.htmlErr
	}
	f.html = html
	return nil
}

func (f *fakeClipboard) WriteText(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.textErr != nil {
		return f.textErr
	}
	f.text = text
	return nil
}

var errNoClipboard = errors.New("no clipboard")

// testEnv returns an isolated Environment with captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	clip   *fakeClipboard
	vars   map[string]string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		clip:   &fakeClipboard{},
		vars:   map[string]string{},
	}
	te.Environment = &Environment{
		Now:     func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) },
		Stdin:   strings.NewReader(""),
		Stdout:  te.stdout,
		Stderr:  te.stderr,
		Getenv:  func(k string) string { return te.vars[k] },
		Environ: te.environ,
		Config:  config.DefaultConfig(),
	}
	te.Clipboard = te.clip
	return te
}

func (te *testEnv) environ() []string {
	out := make([]string, 0, len(te.vars))
	for k, v := range te.vars {
		out = append(out, k+"="+v)
	}
	return out
}

func (te *testEnv) withStdin(s string) *testEnv {
	te.Stdin = strings.NewReader(s)
	return te
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
