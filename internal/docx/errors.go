package docx

import "errors"

// Sentinel errors for document serialization.
var (
	// ErrNilDocument indicates Write was called without a document.
	ErrNilDocument = errors.New("nil document")

	// ErrStylesTemplate indicates the style sheet could not be loaded or rendered.
	ErrStylesTemplate = errors.New("styles template error")

	// ErrSave indicates the package could not be written.
	ErrSave = errors.New("docx save error")
)
