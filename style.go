package md2word

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2word/internal/docmodel"
	"github.com/alnah/go-md2word/internal/pipeline"
)

// Font families offered for body text, keyed by display name.
var fontStacks = map[string]string{
	"Arial":             "Arial, sans-serif",
	"Times New Roman":   "'Times New Roman', serif",
	"Calibri":           "Calibri, sans-serif",
	"Georgia":           "Georgia, serif",
	"Verdana":           "Verdana, sans-serif",
	"Palatino Linotype": "'Palatino Linotype', serif",
}

// FontFamilies lists the accepted family names in display order.
var FontFamilies = []string{"Arial", "Times New Roman", "Calibri", "Georgia", "Verdana", "Palatino Linotype"}

// FontSizes lists the accepted font sizes.
var FontSizes = []string{"11pt", "12px", "14px", "16px", "18px", "20px", "24px"}

// LineHeights lists the accepted unitless line heights.
var LineHeights = []string{"1", "1.15", "1.5", "2"}

// Alignment constants.
const (
	AlignLeft    = "left"
	AlignJustify = "justify"
	AlignCenter  = "center"
	AlignRight   = "right"
)

// Alignments lists the accepted text alignments.
var Alignments = []string{AlignLeft, AlignJustify, AlignCenter, AlignRight}

// Default style values.
const (
	DefaultFontFamily = "Arial, sans-serif"
	DefaultFontSize   = "16px"
	DefaultLineHeight = "1.5"
	DefaultAlign      = AlignLeft
)

// Values the regional preset forces, regardless of the configured style.
const (
	RegionalFontFamily = "'Palatino Linotype', serif"
	RegionalFontSize   = "11pt"
	RegionalLineHeight = "1.5"
	RegionalAlign      = AlignJustify
)

// Style is the user-visible typography configuration.
// Empty fields take the default values.
type Style struct {
	FontFamily string // family name ("Georgia") or CSS stack ("Georgia, serif")
	FontSize   string // "16px", "11pt"
	LineHeight string // "1.5"
	Align      string // "left", "justify", "center", "right"
	Regional   bool   // German academic preset
}

// DefaultStyle returns the style used when nothing is configured.
func DefaultStyle() Style {
	return Style{
		FontFamily: DefaultFontFamily,
		FontSize:   DefaultFontSize,
		LineHeight: DefaultLineHeight,
		Align:      DefaultAlign,
	}
}

// Validate checks every non-empty field against the accepted values.
func (s Style) Validate() error {
	if s.FontFamily != "" {
		if _, ok := fontStack(s.FontFamily); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidFontFamily, s.FontFamily)
		}
	}
	if s.FontSize != "" && !containsFold(FontSizes, s.FontSize) {
		return fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidFontSize, s.FontSize, strings.Join(FontSizes, ", "))
	}
	if s.LineHeight != "" && !containsFold(LineHeights, s.LineHeight) {
		return fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidLineHeight, s.LineHeight, strings.Join(LineHeights, ", "))
	}
	if s.Align != "" && !containsFold(Alignments, s.Align) {
		return fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidAlign, s.Align, strings.Join(Alignments, ", "))
	}
	return nil
}

// Resolved returns the effective style: defaults fill empty fields, family
// names expand to CSS stacks, and the regional preset overwrites all four
// typography fields at once.
func (s Style) Resolved() Style {
	if s.Regional {
		return Style{
			FontFamily: RegionalFontFamily,
			FontSize:   RegionalFontSize,
			LineHeight: RegionalLineHeight,
			Align:      RegionalAlign,
			Regional:   true,
		}
	}

	out := DefaultStyle()
	if stack, ok := fontStack(s.FontFamily); ok {
		out.FontFamily = stack
	}
	if s.FontSize != "" {
		out.FontSize = strings.ToLower(strings.TrimSpace(s.FontSize))
	}
	if s.LineHeight != "" {
		out.LineHeight = strings.TrimSpace(s.LineHeight)
	}
	if s.Align != "" {
		out.Align = strings.ToLower(strings.TrimSpace(s.Align))
	}
	return out
}

// fontStack maps a family name or a known CSS stack to its CSS stack.
func fontStack(family string) (string, bool) {
	name := docmodel.PrimaryFamily(family)
	for _, known := range FontFamilies {
		if strings.EqualFold(known, name) {
			return fontStacks[known], true
		}
	}
	return "", false
}

func containsFold(list []string, v string) bool {
	v = strings.TrimSpace(v)
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

// styleConfig converts a resolved style for the post-processor.
func (s Style) styleConfig(excluded []string) pipeline.StyleConfig {
	return pipeline.StyleConfig{
		FontFamily:      s.FontFamily,
		FontSize:        s.FontSize,
		LineHeight:      s.LineHeight,
		Align:           s.Align,
		Regional:        s.Regional,
		ExcludedOrigins: excluded,
	}
}

// typography converts a resolved style for the document model.
func (s Style) typography() docmodel.Typography {
	return docmodel.Typography{
		FontFamily: s.FontFamily,
		FontSize:   s.FontSize,
		LineHeight: s.LineHeight,
		Regional:   s.Regional,
	}
}
