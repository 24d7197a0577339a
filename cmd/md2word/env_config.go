package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2word/internal/config"
)

const envPrefix = "MD2WORD_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // MD2WORD_CONFIG: config file name or path
	OutputDir  string // MD2WORD_OUTPUT_DIR: default output directory
	Addr       string // MD2WORD_ADDR: preview server address
	Regional   bool   // MD2WORD_REGIONAL: German academic preset
}

// knownEnvVars lists valid MD2WORD_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2WORD_CONFIG":     true,
	"MD2WORD_OUTPUT_DIR": true,
	"MD2WORD_ADDR":       true,
	"MD2WORD_REGIONAL":   true,
}

// loadEnvConfig reads the recognized MD2WORD_* variables.
// An unparseable MD2WORD_REGIONAL counts as unset.
func loadEnvConfig(getenv func(string) string) *envConfig {
	e := &envConfig{
		ConfigPath: getenv("MD2WORD_CONFIG"),
		OutputDir:  getenv("MD2WORD_OUTPUT_DIR"),
		Addr:       getenv("MD2WORD_ADDR"),
	}
	if v := getenv("MD2WORD_REGIONAL"); v != "" {
		e.Regional, _ = strconv.ParseBool(v)
	}
	return e
}

// warnUnknownEnvVars warns about unrecognized MD2WORD_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills config values the file left empty.
// Precedence: CLI flags > env vars > config file > defaults.
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	if e.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = e.OutputDir
	}
	if e.Addr != "" && (cfg.Server.Addr == "" || cfg.Server.Addr == config.DefaultServerAddr) {
		cfg.Server.Addr = e.Addr
	}
	if e.Regional {
		cfg.Style.Regional = true
	}
}
