package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2word"
)

// runHTML prints the rendered HTML, or the clipboard HTML with --styled.
func runHTML(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseHTMLFlags(args, env.Stdout)
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

	conv, err := newConverter(cfg, flags.style.highlight, newLogger(env, flags.common), env)
	if err != nil {
		return err
	}

	var out string
	if flags.styled {
		out, err = conv.ClipboardHTML(ctx, input)
	} else {
		out, err = conv.RenderHTML(ctx, input.Markdown)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(flags.output, []byte(out+"\n"), env); err != nil {
		return err
	}
	if flags.output != "" && flags.output != "-" && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Created %s\n", flags.output)
	}
	return nil
}
