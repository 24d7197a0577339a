package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2word/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Clipboard clipboardInfo `json:"clipboard"`
	Config    configInfo    `json:"config"`
	Output    outputInfo    `json:"output"`
	Env       envInfo       `json:"environment"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// clipboardInfo holds clipboard detection results.
type clipboardInfo struct {
	Checked bool `json:"checked"`
	HTML    bool `json:"html"`
	Text    bool `json:"text"`
}

// configInfo holds configuration loading results.
type configInfo struct {
	Source string `json:"source"`
	Valid  bool   `json:"valid"`
}

// outputInfo holds output directory checks.
type outputInfo struct {
	Dir      string `json:"dir"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Display       string `json:"display,omitempty"` // "wayland", "x11"
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
}

// clipboardChecker is implemented by clipboard writers that can report
// which of their back ends are usable.
type clipboardChecker interface {
	HTMLToolAvailable() bool
	TextAvailable() bool
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	flags, positional, err := parseDoctorFlags(args, env.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "error: %v: doctor takes no arguments\n", ErrUsage)
		return ExitUsage
	}

	result := runDoctor(flags.config, env)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(configName string, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkEnvironment(result, env.Getenv)
	checkClipboard(result, env)
	if outputDir, ok := checkConfig(result, configName, env); ok {
		checkOutputDir(result, outputDir)
	}

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkEnvironment detects the display server and container environments.
func checkEnvironment(result *doctorResult, getenv func(string) string) {
	switch {
	case getenv("WAYLAND_DISPLAY") != "":
		result.Env.Display = "wayland"
	case getenv("DISPLAY") != "":
		result.Env.Display = "x11"
	}

	switch {
	case hints.IsInContainer():
		result.Env.Container, result.Env.ContainerHint = true, "/.dockerenv"
	case getenv("container") != "":
		result.Env.Container, result.Env.ContainerHint = true, "container="+getenv("container")
	case getenv("KUBERNETES_SERVICE_HOST") != "":
		result.Env.Container, result.Env.ContainerHint = true, "KUBERNETES_SERVICE_HOST"
	}
}

// checkClipboard reports which clipboard back ends the copy command can use.
func checkClipboard(result *doctorResult, env *Environment) {
	checker, ok := env.Clipboard.(clipboardChecker)
	if !ok {
		result.Warnings = append(result.Warnings, "Clipboard availability cannot be checked")
		return
	}
	result.Clipboard = clipboardInfo{
		Checked: true,
		HTML:    checker.HTMLToolAvailable(),
		Text:    checker.TextAvailable(),
	}

	switch {
	case !result.Clipboard.HTML && !result.Clipboard.Text:
		result.Errors = append(result.Errors,
			"No clipboard available; use 'md2word html --styled -o out.html' instead of copy")
	case !result.Clipboard.HTML:
		result.Warnings = append(result.Warnings,
			"No rich HTML clipboard tool (wl-copy or xclip); copy falls back to plain text")
	}
}

// checkConfig loads the configuration the other commands would use and
// returns the directory convert writes to.
func checkConfig(result *doctorResult, name string, env *Environment) (string, bool) {
	result.Config.Source = "defaults"
	if name != "" {
		result.Config.Source = name
	} else if v := env.Getenv(envPrefix + "CONFIG"); v != "" {
		result.Config.Source = v
	}

	cfg, err := loadConfig(name, env)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Config: %v", err))
		return "", false
	}
	result.Config.Valid = true

	if cfg.Output.DefaultDir == "" {
		return ".", true
	}
	return cfg.Output.DefaultDir, true
}

// checkOutputDir verifies convert can create files in dir.
func checkOutputDir(result *doctorResult, dir string) {
	result.Output.Dir = dir

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Output directory %s does not exist; convert will create it", dir))
		return
	case err != nil:
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory: %v", err))
		return
	case !info.IsDir():
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory %s is not a directory", dir))
		return
	}
	result.Output.Exists = true

	tmp, err := os.CreateTemp(dir, ".md2word-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory not writable: %s", dir))
		return
	}
	_ = tmp.Close()
	_ = os.Remove(tmp.Name())
	result.Output.Writable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "md2word doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Clipboard")
	if r.Clipboard.Checked {
		fmt.Fprintf(w, "  %s Rich HTML: %s\n", mark(r.Clipboard.HTML, "[WARN]"), availability(r.Clipboard.HTML))
		fmt.Fprintf(w, "  %s Plain text: %s\n", mark(r.Clipboard.Text, "[WARN]"), availability(r.Clipboard.Text))
	} else {
		fmt.Fprintln(w, "  [WARN] Not checked")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Configuration")
	fmt.Fprintf(w, "  %s Source: %s\n", mark(r.Config.Valid, "[ERROR]"), r.Config.Source)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	switch {
	case r.Output.Dir == "":
		fmt.Fprintln(w, "  [SKIP] Not checked (configuration failed)")
	case r.Output.Writable:
		fmt.Fprintf(w, "  [OK] %s: writable\n", r.Output.Dir)
	case !r.Output.Exists:
		fmt.Fprintf(w, "  [WARN] %s: missing\n", r.Output.Dir)
	default:
		fmt.Fprintf(w, "  [ERROR] %s: not writable\n", r.Output.Dir)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Display != "" {
		fmt.Fprintf(w, "  [OK] Display: %s\n", r.Env.Display)
	}
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

func mark(ok bool, failed string) string {
	if ok {
		return "[OK]"
	}
	return failed
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "unavailable"
}
