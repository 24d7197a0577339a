package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2word/internal/assets"
	"github.com/alnah/go-md2word/internal/server"
)

// runServe starts the preview server and blocks until ctx is canceled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: serve takes no arguments", ErrUsage)
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeStyleFlags(&flags.style, cfg)
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(env, flags.common)
	conv, err := newConverter(cfg, flags.style.highlight, log, env)
	if err != nil {
		return err
	}

	loader, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return err
	}
	log.WithField("custom", loader.HasCustomLoader()).Debug("page assets")

	srv, err := server.New(conv, server.Options{
		Addr:     cfg.Server.Addr,
		CacheTTL: cfg.Server.CacheDuration(),
		Title:    cfg.Document.Title,
		Style:    cfg.StyleValue(),
		Logger:   log,
		Assets:   loader,
	})
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving on http://%s (Ctrl+C to stop)\n", cfg.Server.Addr)
	}
	return srv.ListenAndServe(ctx)
}
