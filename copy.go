package md2word

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-md2word/internal/clipboard"
	"github.com/alnah/go-md2word/internal/pipeline"
)

// ClipboardWriter puts content on the clipboard.
type ClipboardWriter = clipboard.Writer

// SystemClipboard returns a ClipboardWriter for the desktop session:
// rich HTML through wl-copy or xclip, plain text everywhere else.
func SystemClipboard() ClipboardWriter {
	return clipboard.NewSystem()
}

// CopyOutcome reports which step of the clipboard fallback chain succeeded.
type CopyOutcome int

// Copy outcomes, from richest to none.
const (
	CopiedStyledHTML CopyOutcome = iota
	CopiedRawHTML
	CopiedHTMLText
	CopiedMarkdown
	CopyFailed
)

func (o CopyOutcome) String() string {
	switch o {
	case CopiedStyledHTML:
		return "styled HTML"
	case CopiedRawHTML:
		return "unstyled HTML"
	case CopiedHTMLText:
		return "plain text"
	case CopiedMarkdown:
		return "markdown text"
	default:
		return "nothing"
	}
}

// Copy puts the converted input on the clipboard, degrading step by step:
// stylized HTML, unstyled HTML, the text of the HTML, then the Markdown
// itself. Failures are logged and never returned; the outcome says what
// ended up on the clipboard. Invalid input yields CopyFailed.
func (c *Converter) Copy(ctx context.Context, input Input, w ClipboardWriter) CopyOutcome {
	if err := input.Validate(); err != nil {
		c.logger.WithError(err).Warn("copy skipped")
		return CopyFailed
	}
	log := c.logger.WithField("stage", "clipboard")

	raw, err := c.RenderHTML(ctx, input.Markdown)
	if err != nil {
		log.WithError(err).Warn("rendering failed, copying markdown")
		return c.copyMarkdown(ctx, input.Markdown, w, log)
	}

	styled, err := pipeline.StylizeHTML(raw, c.styleConfig(input.Style))
	if err == nil {
		if err = w.WriteHTML(ctx, styled); err == nil {
			return CopiedStyledHTML
		}
		log.WithError(err).Warn("styled HTML copy failed")
	} else {
		log.WithError(err).Warn("styling failed")
	}

	if err = w.WriteHTML(ctx, raw); err == nil {
		return CopiedRawHTML
	}
	log.WithError(err).Warn("unstyled HTML copy failed")

	if text := htmlText(raw); text != "" {
		if err = w.WriteText(ctx, text); err == nil {
			return CopiedHTMLText
		}
		log.WithError(err).Warn("plain text copy failed")
	}

	return c.copyMarkdown(ctx, input.Markdown, w, log)
}

func (c *Converter) copyMarkdown(ctx context.Context, markdown string, w ClipboardWriter, log logrus.FieldLogger) CopyOutcome {
	if err := w.WriteText(ctx, markdown); err != nil {
		log.WithError(err).Error("clipboard copy failed")
		return CopyFailed
	}
	return CopiedMarkdown
}

// htmlText returns the text content of an HTML fragment, or "" if it
// cannot be parsed.
func htmlText(content string) string {
	root, err := pipeline.ParseFragment(content)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(pipeline.TextContent(root))
}
