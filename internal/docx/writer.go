package docx

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
	"time"

	"baliance.com/gooxml/document"

	"github.com/alnah/go-md2word/internal/assets"
	"github.com/alnah/go-md2word/internal/docmodel"
)

// Writer serializes documents. It is safe for concurrent use.
type Writer struct {
	styles *template.Template
	now    func() time.Time
}

// NewWriter creates a Writer whose style sheet comes from loader.
func NewWriter(loader assets.AssetLoader) (*Writer, error) {
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}
	tmpl, err := parseStyles(loader)
	if err != nil {
		return nil, err
	}
	return &Writer{styles: tmpl, now: time.Now}, nil
}

// Write writes doc as a .docx package to out.
func (w *Writer) Write(out io.Writer, doc *docmodel.Document) error {
	d, err := w.build(doc)
	if err != nil {
		return err
	}
	if err := d.Save(out); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}

// Bytes returns doc serialized as a .docx package.
func (w *Writer) Bytes(doc *docmodel.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// build assembles the gooxml document for doc.
func (w *Writer) build(doc *docmodel.Document) (*document.Document, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	sheet, err := renderStyleSheet(w.styles, doc.Defaults)
	if err != nil {
		return nil, err
	}

	meta := doc.Meta
	if meta.Created.IsZero() {
		meta.Created = w.now()
	}

	d := document.New()
	applyStyleSheet(d, sheet)
	setProperties(d, meta)
	addBody(d, doc)
	return d, nil
}
