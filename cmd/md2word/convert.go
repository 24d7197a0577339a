package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alnah/go-md2word"
	"github.com/alnah/go-md2word/internal/config"
	"github.com/alnah/go-md2word/internal/fileutil"
)

// runConvert converts one Markdown input to a .docx file.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeStyleFlags(&flags.style, cfg)
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	markdown, err := readInput(positional, env)
	if err != nil {
		return err
	}

	log := newLogger(env, flags.common)
	conv, err := newConverter(cfg, flags.style.highlight, log, env)
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := conv.Convert(ctx, md2word.Input{
		Markdown: markdown,
		Title:    cfg.Document.Title,
		Style:    cfg.StyleValue(),
	})
	if err != nil {
		return err
	}

	outPath, err := resolveOutputPath(flags.output, result.Filename, cfg)
	if err != nil {
		return err
	}
	if err := writeOutput(outPath, result.DOCX, env); err != nil {
		return err
	}

	if flags.common.quiet || outPath == "-" {
		return nil
	}
	size := humanize.Bytes(uint64(len(result.DOCX)))
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Created %s (%s, %d blocks, %v)\n",
			outPath, size, len(result.Document.Blocks), env.Now().Sub(start).Round(time.Millisecond))
	} else {
		fmt.Fprintf(env.Stdout, "Created %s (%s)\n", outPath, size)
	}
	return nil
}

// resolveOutputPath decides where the .docx goes:
//   - no -o: <output.defaultDir or cwd>/<filename>, creating the default dir
//   - -o naming a directory (existing, or ending in a separator): <dir>/<filename>
//   - -o "-": stdout
//   - otherwise the given path, with .docx appended when missing
func resolveOutputPath(flagOutput, filename string, cfg *config.Config) (string, error) {
	if flagOutput == "-" {
		return flagOutput, nil
	}

	if flagOutput == "" {
		dir := cfg.Output.DefaultDir
		if dir == "" {
			return filename, nil
		}
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return "", fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
		}
		return filepath.Join(dir, filename), nil
	}

	if strings.HasSuffix(flagOutput, "/") || strings.HasSuffix(flagOutput, string(filepath.Separator)) {
		return filepath.Join(flagOutput, filename), nil
	}
	if info, err := os.Stat(flagOutput); err == nil && info.IsDir() {
		return filepath.Join(flagOutput, filename), nil
	}

	path, err := fileutil.EnsureExtension(flagOutput, "docx")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return path, nil
}
