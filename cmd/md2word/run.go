package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2word"
	"github.com/alnah/go-md2word/internal/config"
	"github.com/alnah/go-md2word/internal/fileutil"
	"github.com/alnah/go-md2word/internal/hints"
	"github.com/alnah/go-md2word/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrReadMarkdown     = errors.New("failed to read markdown")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrInvalidExtension = errors.New("file must have a Markdown extension (.md, .markdown, .mdown, .mkd)")
	ErrInputTooLarge    = errors.New("markdown input too large")
	ErrCopyFailed       = errors.New("nothing could be copied to the clipboard")
)

// maxInputSize caps Markdown read from files or stdin.
const maxInputSize = 10 << 20

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// commands lists the subcommand names.
var commands = []string{"convert", "html", "copy", "serve", "config", "doctor", "completion", "version", "help"}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	for _, c := range commands {
		if s == c {
			return true
		}
	}
	return false
}

// looksLikeMarkdown reports whether a bare argument is a Markdown file,
// so that "md2word notes.md" runs convert.
func looksLikeMarkdown(s string) bool {
	return fileutil.IsMarkdownPath(s)
}

// runMain dispatches to a subcommand and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error
	switch {
	case cmd == "convert":
		err = runConvert(ctx, rest, env)
	case cmd == "html":
		err = runHTML(ctx, rest, env)
	case cmd == "copy":
		err = runCopy(ctx, rest, env)
	case cmd == "serve":
		err = runServe(ctx, rest, env)
	case cmd == "config":
		err = runConfig(rest, env)
	case cmd == "doctor":
		return runDoctorCmd(rest, env)
	case cmd == "completion":
		err = runCompletion(rest, env)
	case cmd == "version" || cmd == "--version":
		fmt.Fprintf(env.Stdout, "md2word %s\n", Version)
	case cmd == "help" || cmd == "-h" || cmd == "--help":
		runHelp(rest, env)
	case looksLikeMarkdown(cmd):
		err = runConvert(ctx, args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// hintFor returns an actionable hint for well-known failures.
func hintFor(err error) string {
	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, md2word.ErrInvalidFontFamily):
		return hints.ForInvalidStyle(md2word.FontFamilies)
	case errors.Is(err, md2word.ErrInvalidFontSize):
		return hints.ForInvalidStyle(md2word.FontSizes)
	case errors.Is(err, md2word.ErrInvalidLineHeight):
		return hints.ForInvalidStyle(md2word.LineHeights)
	case errors.Is(err, md2word.ErrInvalidAlign):
		return hints.ForInvalidStyle(md2word.Alignments)
	case errors.Is(err, md2word.ErrEmptyMarkdown):
		return hints.ForEmptyInput()
	case errors.Is(err, ErrCopyFailed):
		return hints.ForClipboard()
	case errors.Is(err, syscall.EADDRINUSE):
		return hints.ForAddressInUse()
	case errors.Is(err, ErrWriteOutput) && errors.Is(err, os.ErrNotExist):
		return hints.ForOutputDirectory()
	}
	return ""
}

// loadConfig returns the config named by the flag or MD2WORD_CONFIG, with
// environment overrides applied. Without a name, env.Config is copied.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		base := *env.Config
		base.Links.ExcludedOrigins = append([]string(nil), env.Config.Links.ExcludedOrigins...)
		cfg = &base
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeStyleFlags merges typography flags into config. CLI values override config values.
func mergeStyleFlags(f *styleFlags, cfg *config.Config) {
	if f.fontFamily != "" {
		cfg.Style.FontFamily = f.fontFamily
	}
	if f.fontSize != "" {
		cfg.Style.FontSize = f.fontSize
	}
	if f.lineHeight != "" {
		cfg.Style.LineHeight = f.lineHeight
	}
	if f.align != "" {
		cfg.Style.Align = f.align
	}
	if f.regional {
		cfg.Style.Regional = true
	}
}

// newLogger builds the logger for library and server diagnostics.
func newLogger(env *Environment, f commonFlags) *logrus.Logger {
	return logging.New(env.Stderr, f.verbose, f.quiet)
}

// newConverter builds a Converter from the merged config.
func newConverter(cfg *config.Config, highlight bool, log logrus.FieldLogger, env *Environment) (*md2word.Converter, error) {
	opts := []md2word.Option{
		md2word.WithLogger(log),
		md2word.WithHighlighting(highlight),
		md2word.WithClock(env.Now),
		md2word.WithAssetPath(cfg.Assets.BasePath),
	}
	if len(cfg.Links.ExcludedOrigins) > 0 {
		opts = append(opts, md2word.WithExcludedOrigins(cfg.Links.ExcludedOrigins...))
	}
	return md2word.NewConverter(opts...)
}

// readInput reads Markdown from the single positional argument, or from
// stdin when it is omitted or "-".
func readInput(args []string, env *Environment) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected at most one input, got %d", ErrUsage, len(args))
	}

	if len(args) == 0 || args[0] == "-" {
		return readLimited(env.Stdin, "stdin")
	}

	path := args[0]
	if !fileutil.IsMarkdownPath(path) {
		return "", fmt.Errorf("%w: %s", ErrInvalidExtension, path)
	}
	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	defer f.Close()
	return readLimited(f, path)
}

func readLimited(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadMarkdown, name, err)
	}
	if len(data) > maxInputSize {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrInputTooLarge, name, maxInputSize)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

// writeOutput writes data to path, or to stdout when path is "" or "-".
func writeOutput(path string, data []byte, env *Environment) error {
	if path == "" || path == "-" {
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
