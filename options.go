package md2word

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-md2word/internal/pipeline"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds construction-time settings.
type converterConfig struct {
	highlight bool
	assetPath string
}

// WithLogger sets the logger for diagnostics. Defaults to a discarding logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithExcludedOrigins replaces the link origins whose anchors are flattened
// to plain text in pasted HTML. Matching is by substring of the href.
func WithExcludedOrigins(origins ...string) Option {
	return func(c *Converter) {
		c.excludedOrigins = append([]string(nil), origins...)
	}
}

// WithHighlighting enables class-based syntax highlighting of fenced code.
func WithHighlighting(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.highlight = enabled
	}
}

// WithClock sets the time source for document timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// WithAssetPath loads templates from path/templates before falling back to
// the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func defaultExcludedOrigins() []string {
	return append([]string(nil), pipeline.DefaultExcludedOrigins...)
}
