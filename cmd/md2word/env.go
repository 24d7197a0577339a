package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-md2word"
	"github.com/alnah/go-md2word/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, environment variables, the clipboard and configuration.
type Environment struct {
	Now       func() time.Time
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Getenv    func(string) string
	Environ   func() []string
	Clipboard md2word.ClipboardWriter
	Config    *config.Config // used when no config file is named
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Getenv:    os.Getenv,
		Environ:   os.Environ,
		Clipboard: md2word.SystemClipboard(),
		Config:    config.DefaultConfig(),
	}
}
