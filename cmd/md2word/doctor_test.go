package main

// Notes:
// - Tests go through runDoctorCmd and inspect the JSON report or text output
// - The clipboard is a fake that reports fixed back-end availability
// - Output directories are temp dirs so the working directory is never written
// - hints.IsInContainer is not stubbed; container assertions only cover the
//   environment-variable signals and tolerate /.dockerenv

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// availabilityClipboard is a fakeClipboard that reports availability.
type availabilityClipboard struct {
	fakeClipboard
	htmlOK bool
	textOK bool
}

func (p *availabilityClipboard) HTMLToolAvailable() bool { return p.htmlOK }
func (p *availabilityClipboard) TextAvailable() bool { return p.textOK }

// doctorEnv returns a test env whose default output dir is a temp dir.
func doctorEnv(t *testing.T, html, text bool) *testEnv {
	t.Helper()

	te := newTestEnv(t)
	te.Clipboard = &availabilityClipboard{htmlOK: html, textOK: text}
	te.Config.Output.DefaultDir = t.TempDir()
	return te
}

func decodeDoctor(t *testing.T, te *testEnv) doctorResult {
	t.Helper()

	var result doctorResult
	if err := json.Unmarshal(te.stdout.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, te.stdout.String())
	}
	return result
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput - Report structure and status
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	te := doctorEnv(t, true, true)
	code := runDoctorCmd([]string{"--json"}, te.Environment)

	result := decodeDoctor(t, te)
	if result.Env.OS != runtime.GOOS || result.Env.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", result.Env.OS, result.Env.Arch, runtime.GOOS, runtime.GOARCH)
	}
	if !result.Clipboard.Checked || !result.Clipboard.HTML || !result.Clipboard.Text {
		t.Errorf("clipboard = %+v, want all available", result.Clipboard)
	}
	if !result.Config.Valid || result.Config.Source != "defaults" {
		t.Errorf("config = %+v, want valid defaults", result.Config)
	}
	if !result.Output.Exists || !result.Output.Writable {
		t.Errorf("output = %+v, want writable", result.Output)
	}
	if result.Status != "ready" {
		t.Errorf("status = %q, want ready (warnings %v, errors %v)", result.Status, result.Warnings, result.Errors)
	}
	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_Clipboard - Clipboard availability levels
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_Clipboard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		html, text bool
		wantStatus string
		wantCode   int
		wantText   string
	}{
		{"rich and plain", true, true, "ready", ExitSuccess, ""},
		{"plain only", false, true, "warnings", ExitSuccess, "copy falls back to plain text"},
		{"nothing", false, false, "errors", ExitGeneral, "No clipboard available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := doctorEnv(t, tt.html, tt.text)
			code := runDoctorCmd([]string{"--json"}, te.Environment)

			result := decodeDoctor(t, te)
			if result.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", result.Status, tt.wantStatus)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantText != "" && !strings.Contains(te.stdout.String(), tt.wantText) {
				t.Errorf("report should mention %q:\n%s", tt.wantText, te.stdout.String())
			}
		})
	}
}

func TestRunDoctorCmd_UncheckedClipboard(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	te.Config.Output.DefaultDir = t.TempDir()

	code := runDoctorCmd([]string{"--json"}, te.Environment)

	result := decodeDoctor(t, te)
	if result.Clipboard.Checked {
		t.Error("fake clipboard without availability methods should not be checked")
	}
	if result.Status != "warnings" || code != ExitSuccess {
		t.Errorf("status = %q code = %d, want warnings/0", result.Status, code)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_Config - Configuration checks
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_Config(t *testing.T) {
	t.Parallel()

	t.Run("explicit valid file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "cfg.yaml", "output:\n  defaultDir: "+filepath.ToSlash(dir)+"\n")

		te := doctorEnv(t, true, true)
		code := runDoctorCmd([]string{"--json", "--config", path}, te.Environment)

		result := decodeDoctor(t, te)
		if !result.Config.Valid || result.Config.Source != path {
			t.Errorf("config = %+v, want valid from %s", result.Config, path)
		}
		if result.Output.Dir != filepath.ToSlash(dir) {
			t.Errorf("output dir = %q, want %q", result.Output.Dir, filepath.ToSlash(dir))
		}
		if code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "cfg.yaml", "style:\n  align: sideways\n")

		te := doctorEnv(t, true, true)
		code := runDoctorCmd([]string{"--json", "-c", path}, te.Environment)

		result := decodeDoctor(t, te)
		if result.Config.Valid {
			t.Error("config should be invalid")
		}
		if result.Status != "errors" || code != ExitGeneral {
			t.Errorf("status = %q code = %d, want errors/%d", result.Status, code, ExitGeneral)
		}
	})

	t.Run("source from environment", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "env.yaml", "document:\n  title: Notes\n")

		te := doctorEnv(t, true, true)
		te.vars["MD2WORD_CONFIG"] = path
		te.vars["MD2WORD_OUTPUT_DIR"] = t.TempDir()
		_ = runDoctorCmd([]string{"--json"}, te.Environment)

		if got := decodeDoctor(t, te).Config.Source; got != path {
			t.Errorf("source = %q, want %q", got, path)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_OutputDir - Output directory checks
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_OutputDir(t *testing.T) {
	t.Parallel()

	t.Run("missing directory warns", func(t *testing.T) {
		t.Parallel()

		te := doctorEnv(t, true, true)
		te.Config.Output.DefaultDir = filepath.Join(t.TempDir(), "later")

		code := runDoctorCmd([]string{"--json"}, te.Environment)

		result := decodeDoctor(t, te)
		if result.Output.Exists || result.Status != "warnings" || code != ExitSuccess {
			t.Errorf("output = %+v status = %q code = %d", result.Output, result.Status, code)
		}
	})

	t.Run("file instead of directory fails", func(t *testing.T) {
		t.Parallel()

		te := doctorEnv(t, true, true)
		te.Config.Output.DefaultDir = writeFile(t, t.TempDir(), "plain", "x")

		code := runDoctorCmd([]string{"--json"}, te.Environment)

		if result := decodeDoctor(t, te); result.Status != "errors" || code != ExitGeneral {
			t.Errorf("status = %q code = %d, want errors/%d", result.Status, code, ExitGeneral)
		}
	})

	t.Run("temp file is removed", func(t *testing.T) {
		t.Parallel()

		te := doctorEnv(t, true, true)
		_ = runDoctorCmd([]string{"--json"}, te.Environment)

		entries, err := os.ReadDir(te.Config.Output.DefaultDir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("output dir should be empty after doctor, found %d entries", len(entries))
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_Environment - Display and container detection
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_Environment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		vars        map[string]string
		wantDisplay string
		wantHint    string
	}{
		{"wayland wins over x11", map[string]string{"WAYLAND_DISPLAY": "wayland-0", "DISPLAY": ":0"}, "wayland", ""},
		{"x11", map[string]string{"DISPLAY": ":0"}, "x11", ""},
		{"podman", map[string]string{"container": "podman"}, "", "container=podman"},
		{"kubernetes", map[string]string{"KUBERNETES_SERVICE_HOST": "10.0.0.1"}, "", "KUBERNETES_SERVICE_HOST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := doctorEnv(t, true, true)
			for k, v := range tt.vars {
				te.vars[k] = v
			}
			_ = runDoctorCmd([]string{"--json"}, te.Environment)

			result := decodeDoctor(t, te)
			if result.Env.Display != tt.wantDisplay {
				t.Errorf("display = %q, want %q", result.Env.Display, tt.wantDisplay)
			}
			if tt.wantHint != "" && result.Env.ContainerHint != tt.wantHint && result.Env.ContainerHint != "/.dockerenv" {
				t.Errorf("container hint = %q, want %q", result.Env.ContainerHint, tt.wantHint)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_HumanOutput - Text report sections
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	t.Parallel()

	te := doctorEnv(t, false, true)
	code := runDoctorCmd(nil, te.Environment)

	out := te.stdout.String()
	for _, want := range []string{
		"md2word doctor",
		"Clipboard",
		"[WARN] Rich HTML: unavailable",
		"[OK] Plain text: available",
		"Configuration",
		"[OK] Source: defaults",
		"writable",
		"Platform: " + runtime.GOOS + "/" + runtime.GOARCH,
		"Status: Ready with warnings",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_Usage - Flag errors and help
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"--nope"}, ExitUsage},
		{"positional argument", []string{"extra"}, ExitUsage},
		{"help", []string{"--help"}, ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := doctorEnv(t, true, true)
			if got := runDoctorCmd(tt.args, te.Environment); got != tt.want {
				t.Errorf("runDoctorCmd(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestRunMain_Doctor(t *testing.T) {
	t.Parallel()

	te := doctorEnv(t, true, true)
	if code := runMain([]string{"md2word", "doctor", "--json"}, te.Environment); code != ExitSuccess {
		t.Errorf("exit code = %d, want %d\nstderr: %s", code, ExitSuccess, te.stderr.String())
	}
	if decodeDoctor(t, te).Status != "ready" {
		t.Error("doctor via runMain should report ready")
	}
}
