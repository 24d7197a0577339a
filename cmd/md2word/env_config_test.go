package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2word/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"MD2WORD_CONFIG":     "thesis",
		"MD2WORD_OUTPUT_DIR": "out",
		"MD2WORD_ADDR":       ":9000",
		"MD2WORD_REGIONAL":   "true",
	}
	got := loadEnvConfig(func(k string) string { return vars[k] })

	want := envConfig{ConfigPath: "thesis", OutputDir: "out", Addr: ":9000", Regional: true}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}

	bad := loadEnvConfig(func(k string) string {
		if k == "MD2WORD_REGIONAL" {
			return "sure"
		}
		return ""
	})
	if bad.Regional {
		t.Error("unparseable MD2WORD_REGIONAL should count as unset")
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"PATH=/usr/bin",
		"MD2WORD_CONFIG=x",
		"MD2WORD_REGINAL=1",
	})

	out := buf.String()
	if !strings.Contains(out, "MD2WORD_REGINAL") {
		t.Errorf("expected warning for typo, got %q", out)
	}
	if strings.Contains(out, "MD2WORD_CONFIG") || strings.Contains(out, "PATH") {
		t.Errorf("unexpected warning in %q", out)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills empty values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{OutputDir: "out", Addr: ":9000", Regional: true}, cfg)

		if cfg.Output.DefaultDir != "out" || cfg.Server.Addr != ":9000" || !cfg.Style.Regional {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("config file wins", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "docs"
		cfg.Server.Addr = "0.0.0.0:80"
		applyEnvConfig(&envConfig{OutputDir: "out", Addr: ":9000"}, cfg)

		if cfg.Output.DefaultDir != "docs" || cfg.Server.Addr != "0.0.0.0:80" {
			t.Errorf("cfg = %+v", cfg)
		}
	})
}
