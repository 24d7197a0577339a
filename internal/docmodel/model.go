// Package docmodel describes a Word document as a flat list of blocks and
// builds that list from a parsed HTML fragment.
//
// Blocks carry only what the serializer needs: text runs with bold and
// italic flags, indentation, a left border, paragraph spacing and
// alignment. Measurements are in twips (1/20 pt) unless noted.
package docmodel

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the role of a block in the output document.
type Kind int

// Block kinds.
const (
	KindTitle Kind = iota
	KindHeading
	KindParagraph
	KindListItem
	KindRule
	KindBlockquoteLine
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "Title"
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindListItem:
		return "ListItem"
	case KindRule:
		return "Rule"
	case KindBlockquoteLine:
		return "BlockquoteLine"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Alignment is the horizontal alignment of a block.
type Alignment int

// Alignments. AlignDefault leaves alignment to the paragraph style.
const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

// Run is a span of text with uniform formatting. A "\n" inside Text is a
// line break within the paragraph.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Border is a single left paragraph border.
type Border struct {
	Color string // hex RGB without '#'
	Size  int    // eighths of a point
	Space int    // points between border and text
}

// Spacing is the space before and after a paragraph.
type Spacing struct {
	Before int
	After  int
}

// Block is one paragraph-level element of the output document.
type Block struct {
	Kind    Kind
	Level   int // heading level 1-4
	Ordered bool
	Index   int // 1-based position in an ordered list
	Runs    []Run
	Indent  int // left indent
	Border  *Border
	Spacing *Spacing
	Align   Alignment
}

// Text returns the concatenated run text.
func (b Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Margins are page margins.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Page margins for the two layouts.
var (
	DefaultMargins  = Margins{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440}
	RegionalMargins = Margins{Top: 1700, Right: 1400, Bottom: 1700, Left: 1700}
)

// Description is written into the document properties of every file.
const Description = "Converted from Markdown"

// Meta holds document properties and page setup.
type Meta struct {
	Title       string
	Description string
	Created     time.Time
	Margins     Margins
}

// Defaults are the document-wide font settings written to the styles part.
type Defaults struct {
	FontFamily            string
	FontSizeHalfPoints    int
	LineSpacing           int // 240ths of a line
	HeadingFont           string
	HeadingSizeHalfPoints int // 0 keeps per-level sizes
	Language              string
}

// Document is the complete description handed to the serializer.
type Document struct {
	Meta     Meta
	Defaults Defaults
	Blocks   []Block
}

// Typography is the resolved style the document defaults derive from.
type Typography struct {
	FontFamily string // CSS font-family list, e.g. "Arial, sans-serif"
	FontSize   string // "16px" or "11pt"
	LineHeight string // unitless multiplier, e.g. "1.5"
	Regional   bool
}

// Regional heading font, matching the pasted HTML.
const (
	RegionalHeadingFont           = "Calibri"
	RegionalHeadingSizeHalfPoints = 24
)

// Proofing languages.
const (
	DefaultLanguage  = "en-US"
	RegionalLanguage = "de-DE"
)

// NewDocument assembles a Document from built blocks and typography.
func NewDocument(title string, blocks []Block, typo Typography, created time.Time) *Document {
	doc := &Document{
		Meta: Meta{
			Title:       title,
			Description: Description,
			Created:     created,
			Margins:     DefaultMargins,
		},
		Defaults: Defaults{
			FontFamily:         PrimaryFamily(typo.FontFamily),
			FontSizeHalfPoints: HalfPoints(typo.FontSize),
			LineSpacing:        LineSpacing(typo.LineHeight),
			Language:           DefaultLanguage,
		},
		Blocks: blocks,
	}
	if typo.Regional {
		doc.Meta.Margins = RegionalMargins
		doc.Defaults.HeadingFont = RegionalHeadingFont
		doc.Defaults.HeadingSizeHalfPoints = RegionalHeadingSizeHalfPoints
		doc.Defaults.Language = RegionalLanguage
	}
	return doc
}

// PrimaryFamily returns the first family of a CSS font-family list.
func PrimaryFamily(list string) string {
	first, _, _ := strings.Cut(list, ",")
	first = strings.Trim(strings.TrimSpace(first), `"'`)
	if first == "" {
		return "Arial"
	}
	return first
}

// HalfPoints converts a CSS font size in px or pt to Word half-points.
// Unparseable sizes fall back to 12pt.
func HalfPoints(size string) int {
	size = strings.ToLower(strings.TrimSpace(size))
	var points float64
	switch {
	case strings.HasSuffix(size, "pt"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(size, "pt"), 64)
		if err != nil || v <= 0 {
			return 24
		}
		points = v
	case strings.HasSuffix(size, "px"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(size, "px"), 64)
		if err != nil || v <= 0 {
			return 24
		}
		points = v * 0.75
	default:
		return 24
	}
	return int(points*2 + 0.5)
}

// LineSpacing converts a unitless line height to 240ths of a line.
// Unparseable values fall back to single spacing.
func LineSpacing(lineHeight string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(lineHeight), 64)
	if err != nil || v <= 0 {
		return 240
	}
	return int(v*240 + 0.5)
}
