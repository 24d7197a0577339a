package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2word"
	"github.com/alnah/go-md2word/internal/hints"
)

// runCopy puts the converted Markdown on the clipboard.
func runCopy(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCopyFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeStyleFlags(&flags.style, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	markdown, err := readInput(positional, env)
	if err != nil {
		return err
	}
	input := md2word.Input{Markdown: markdown, Title: cfg.Document.Title, Style: cfg.StyleValue()}
	if err := input.Validate(); err != nil {
		return err
	}

	log := newLogger(env, flags.common)
	conv, err := newConverter(cfg, flags.style.highlight, log, env)
	if err != nil {
		return err
	}
	if tools, ok := env.Clipboard.(interface{ HTMLToolAvailable() bool }); ok {
		log.WithField("available", tools.HTMLToolAvailable()).Debug("rich HTML clipboard tool")
	}

	outcome := conv.Copy(ctx, input, env.Clipboard)
	if outcome == md2word.CopyFailed {
		return ErrCopyFailed
	}
	if flags.common.quiet {
		return nil
	}

	fmt.Fprintf(env.Stdout, "Copied %s to clipboard\n", outcome)
	if outcome != md2word.CopiedStyledHTML {
		fmt.Fprintf(env.Stderr, "warning: rich HTML clipboard unavailable%s\n", hints.ForClipboard())
	}
	return nil
}
