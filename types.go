package md2word

import (
	"strings"

	"github.com/alnah/go-md2word/internal/docmodel"
)

// DefaultTitle names documents converted without a title.
const DefaultTitle = "Markdown Document"

// PreviewErrorPlaceholder replaces the preview when Markdown cannot be rendered.
const PreviewErrorPlaceholder = "<p>Error parsing markdown</p>"

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Title    string // Document title (optional, defaults to DefaultTitle)
	Style    Style  // Typography (optional, zero value = DefaultStyle)
}

// title returns the trimmed title or DefaultTitle.
func (in Input) title() string {
	if t := strings.TrimSpace(in.Title); t != "" {
		return t
	}
	return DefaultTitle
}

// Validate checks that required fields are present and valid.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Markdown) == "" {
		return ErrEmptyMarkdown
	}
	return in.Style.Validate()
}

// Result is the output of a full conversion.
type Result struct {
	HTML     string             // stylized HTML, as it would be pasted
	Document *docmodel.Document // block model handed to the serializer
	DOCX     []byte             // .docx package
	Filename string             // suggested download name
}
