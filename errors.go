package md2word

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2word/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrHTMLParse      = pipeline.ErrHTMLParse
	ErrDocxGeneration = errors.New("DOCX generation failed")

	// Style validation errors. Each specific error wraps ErrInvalidStyle.
	ErrInvalidStyle      = errors.New("invalid style")
	ErrInvalidFontFamily = fmt.Errorf("%w: font family", ErrInvalidStyle)
	ErrInvalidFontSize   = fmt.Errorf("%w: font size", ErrInvalidStyle)
	ErrInvalidLineHeight = fmt.Errorf("%w: line height", ErrInvalidStyle)
	ErrInvalidAlign      = fmt.Errorf("%w: alignment", ErrInvalidStyle)

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
