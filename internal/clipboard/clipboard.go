// Package clipboard writes converted output to the system clipboard.
//
// Rich HTML needs a platform tool that can set a MIME type (wl-copy on
// Wayland, xclip on X11). Plain text goes through github.com/atotto/clipboard,
// which covers macOS, Windows and Linux.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/alnah/go-md2word/internal/process"
)

// Sentinel errors for clipboard operations.
var (
	// ErrNoHTMLClipboard indicates no tool able to write text/html was found.
	ErrNoHTMLClipboard = errors.New("no HTML clipboard tool found")

	// ErrClipboardWrite indicates the clipboard tool or library failed.
	ErrClipboardWrite = errors.New("clipboard write failed")
)

// Writer puts content on the clipboard.
type Writer interface {
	WriteHTML(ctx context.Context, html string) error
	WriteText(ctx context.Context, text string) error
}

// htmlTool is a command that reads HTML on stdin and owns the clipboard.
type htmlTool struct {
	name string
	args []string
}

// htmlTools are tried in order; the first one on PATH wins.
var htmlTools = []htmlTool{
	{name: "wl-copy", args: []string{"--type", "text/html"}},
	{name: "xclip", args: []string{"-selection", "clipboard", "-t", "text/html"}},
}

// runFunc runs name with args, feeding stdin.
type runFunc func(ctx context.Context, stdin, name string, args ...string) error

// System writes to the clipboard of the running desktop session.
type System struct {
	lookPath        func(string) (string, error)
	run             runFunc
	writeText       func(string) error
	textUnsupported bool
}

// NewSystem creates a System clipboard writer.
func NewSystem() *System {
	return &System{
		lookPath:        exec.LookPath,
		run:             runCommand,
		writeText:       clipboard.WriteAll,
		textUnsupported: clipboard.Unsupported,
	}
}

// WriteHTML writes html as text/html. Returns ErrNoHTMLClipboard when no
// supported tool is installed.
func (s *System) WriteHTML(ctx context.Context, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tool, err := s.findHTMLTool()
	if err != nil {
		return err
	}
	if err := s.run(ctx, html, tool.name, tool.args...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrClipboardWrite, tool.name, err)
	}
	return nil
}

// WriteText writes plain text.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.textUnsupported {
		return fmt.Errorf("%w: no text clipboard available", ErrClipboardWrite)
	}
	if err := s.writeText(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardWrite, err)
	}
	return nil
}

// HTMLToolAvailable reports whether WriteHTML can reach a tool.
func (s *System) HTMLToolAvailable() bool {
	_, err := s.findHTMLTool()
	return err == nil
}

// TextAvailable reports whether WriteText has a clipboard to write to.
func (s *System) TextAvailable() bool {
	return !s.textUnsupported
}

func (s *System) findHTMLTool() (htmlTool, error) {
	names := make([]string, 0, len(htmlTools))
	for _, tool := range htmlTools {
		if _, err := s.lookPath(tool.name); err == nil {
			return tool, nil
		}
		names = append(names, tool.name)
	}
	return htmlTool{}, fmt.Errorf("%w (looked for %s)", ErrNoHTMLClipboard, strings.Join(names, ", "))
}

func runCommand(ctx context.Context, stdin, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- name comes from htmlTools
	process.Isolate(cmd)
	cmd.Stdin = strings.NewReader(stdin)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%v: %s", err, msg)
		}
		return err
	}
	return nil
}

// Compile-time interface check.
var _ Writer = (*System)(nil)
