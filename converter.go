package md2word

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-md2word/internal/assets"
	"github.com/alnah/go-md2word/internal/docmodel"
	"github.com/alnah/go-md2word/internal/docx"
	"github.com/alnah/go-md2word/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.Preprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Converter orchestrates the Markdown to Word pipeline.
// It holds no mutable state after construction and is safe for concurrent use.
type Converter struct {
	cfg             converterConfig
	logger          logrus.FieldLogger
	excludedOrigins []string
	now             func() time.Time
	preprocessor    pipeline.MarkdownPreprocessor
	htmlConverter   pipeline.HTMLConverter
	docxWriter      *docx.Writer
}

// NewConverter creates a Converter. Returns an error if the asset path is
// invalid or the Word styles template cannot be parsed.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		logger:          discardLogger(),
		excludedOrigins: defaultExcludedOrigins(),
		now:             time.Now,
		preprocessor:    &pipeline.Preprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Tests may inject their own converter.
	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter(c.cfg.highlight)
	}

	var loader assets.AssetLoader = assets.NewEmbeddedLoader()
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		loader = resolver
	}

	writer, err := docx.NewWriter(loader)
	if err != nil {
		return nil, fmt.Errorf("initializing document writer: %w", err)
	}
	c.docxWriter = writer

	return c, nil
}

// RenderHTML converts Markdown to an HTML fragment without styling.
func (c *Converter) RenderHTML(ctx context.Context, markdown string) (string, error) {
	content := c.preprocessor.PreprocessMarkdown(ctx, markdown)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.htmlConverter.ToHTML(ctx, content)
}

// Preview renders Markdown for display. Rendering failures are logged and
// replaced by PreviewErrorPlaceholder; blank input renders as "".
func (c *Converter) Preview(ctx context.Context, markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return ""
	}
	out, err := c.RenderHTML(ctx, markdown)
	if err != nil {
		c.logger.WithError(err).Warn("preview rendering failed")
		return PreviewErrorPlaceholder
	}
	return out
}

// ClipboardHTML returns the rendered Markdown with inline styles for pasting
// into a word processor.
func (c *Converter) ClipboardHTML(ctx context.Context, input Input) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}
	raw, err := c.RenderHTML(ctx, input.Markdown)
	if err != nil {
		return "", err
	}
	return pipeline.StylizeHTML(raw, c.styleConfig(input.Style))
}

// Convert runs the full pipeline and returns the stylized HTML, the block
// model and the .docx bytes. Recovers from internal panics to prevent
// crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	start := c.now()
	title := input.title()
	style := input.Style.Resolved()
	log := c.logger.WithFields(logrus.Fields{"title": title, "regional": style.Regional})

	raw, err := c.RenderHTML(ctx, input.Markdown)
	if err != nil {
		return nil, err
	}

	root, err := pipeline.ParseFragment(raw)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	styled, err := pipeline.RenderFragment(pipeline.Stylize(root, style.styleConfig(c.excludedOrigins)))
	if err != nil {
		log.WithError(err).Warn("stylized HTML unavailable, keeping rendered HTML")
		styled = raw
	}

	blocks := docmodel.Build(root, title)
	doc := docmodel.NewDocument(title, blocks, style.typography(), start)

	data, err := c.docxWriter.Bytes(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocxGeneration, err)
	}

	log.WithFields(logrus.Fields{
		"blocks":   len(blocks),
		"bytes":    len(data),
		"duration": c.now().Sub(start),
	}).Debug("document converted")

	return &Result{
		HTML:     styled,
		Document: doc,
		DOCX:     data,
		Filename: Filename(title, style.Regional),
	}, nil
}

func (c *Converter) styleConfig(s Style) pipeline.StyleConfig {
	return s.Resolved().styleConfig(c.excludedOrigins)
}
