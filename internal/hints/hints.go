// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-md2word/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForClipboard returns hints for clipboard failures, based on the
// display server the session runs under.
func ForClipboard() string {
	var hints []string

	switch {
	case os.Getenv("WAYLAND_DISPLAY") != "":
		hints = append(hints, "install wl-clipboard for rich HTML (wl-copy)")
	case os.Getenv("DISPLAY") != "":
		hints = append(hints, "install xclip for rich HTML")
	}

	if IsInContainer() || os.Getenv("SSH_CONNECTION") != "" {
		hints = append(hints, "no local clipboard here; use 'md2word html --styled -o out.html'")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2word/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(slashPath(p), "go-md2word/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInvalidStyle lists the accepted values for a rejected style setting.
func ForInvalidStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForEmptyInput returns a hint for blank Markdown input.
func ForEmptyInput() string {
	return format("pass a Markdown file or pipe content on stdin ('-')")
}

// ForAddressInUse returns a hint for a server address already taken.
func ForAddressInUse() string {
	return format("pick another port with --addr, e.g. --addr 127.0.0.1:8081")
}

// slashPath normalizes Windows separators for substring checks.
func slashPath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
