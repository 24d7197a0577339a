package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight markers live in the Unicode Private Use Area so goldmark passes
// them through untouched; ConvertMarkPlaceholders turns them into <mark>.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

const byteOrderMark = "\uFEFF"

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==([^=\n]+?)==`)
)

// MarkdownPreprocessor prepares raw user input before rendering.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// Preprocessor normalizes pasted Markdown: BOM, line endings, blank-line
// runs, and ==highlight== syntax.
type Preprocessor struct{}

// PreprocessMarkdown returns content unchanged if ctx is already done.
func (p *Preprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// ConvertMarkPlaceholders replaces highlight markers with <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	if !strings.Contains(content, MarkStartPlaceholder) {
		return content
	}
	return strings.NewReplacer(
		MarkStartPlaceholder, "<mark>",
		MarkEndPlaceholder, "</mark>",
	).Replace(content)
}
