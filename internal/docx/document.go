package docx

import (
	"strconv"
	"strings"

	"baliance.com/gooxml"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/alnah/go-md2word/internal/docmodel"
)

// A4 portrait in twips.
const (
	pageWidth  = 11906
	pageHeight = 16838
)

// Header and footer distance from the page edge, in twips.
const headerFooterDistance = 708

// addBody appends every block of doc and sets up the page.
func addBody(d *document.Document, doc *docmodel.Document) {
	for _, b := range doc.Blocks {
		addParagraph(d, b)
	}
	setupSection(d.BodySection(), doc.Meta.Margins)
}

// addParagraph appends one block as a paragraph.
func addParagraph(d *document.Document, b docmodel.Block) document.Paragraph {
	p := d.AddParagraph()
	if style := paragraphStyle(b); style != "" {
		p.SetStyle(style)
	}

	props := p.Properties()
	ppr := props.X()
	if b.Border != nil {
		ppr.PBdr = wml.NewCT_PBdr()
		ppr.PBdr.Left = wml.NewCT_Border()
		ppr.PBdr.Left.ValAttr = wml.ST_BorderSingle
		ppr.PBdr.Left.ColorAttr = &wml.ST_HexColor{ST_HexColorRGB: gooxml.String(b.Border.Color)}
		ppr.PBdr.Left.SzAttr = gooxml.Uint64(uint64(b.Border.Size))
		ppr.PBdr.Left.SpaceAttr = gooxml.Uint64(uint64(b.Border.Space))
	}
	if b.Spacing != nil {
		ppr.Spacing = wml.NewCT_Spacing()
		ppr.Spacing.BeforeAttr = twipsMeasure(b.Spacing.Before)
		ppr.Spacing.AfterAttr = twipsMeasure(b.Spacing.After)
	}
	if b.Indent > 0 {
		props.SetStartIndent(twips(b.Indent))
	}
	if jc, ok := justification(b.Align); ok {
		props.SetAlignment(jc)
	}

	for _, r := range b.Runs {
		addRun(p, r)
	}
	return p
}

// addRun appends r to p, turning each "\n" into a line break.
func addRun(p document.Paragraph, r docmodel.Run) {
	if r.Text == "" {
		return
	}
	run := p.AddRun()
	if r.Bold {
		run.Properties().SetBold(true)
	}
	if r.Italic {
		run.Properties().SetItalic(true)
	}
	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			run.AddBreak()
		}
		if line != "" {
			run.AddText(line)
		}
	}
}

func setupSection(s document.Section, m docmodel.Margins) {
	s.SetPageMargins(
		twips(m.Top), twips(m.Right), twips(m.Bottom), twips(m.Left),
		twips(headerFooterDistance), twips(headerFooterDistance), 0,
	)
	x := s.X()
	x.PgSz = wml.NewCT_PageSz()
	x.PgSz.WAttr = twipsMeasure(pageWidth)
	x.PgSz.HAttr = twipsMeasure(pageHeight)
}

func paragraphStyle(b docmodel.Block) string {
	switch b.Kind {
	case docmodel.KindTitle:
		return "Title"
	case docmodel.KindHeading:
		if b.Level >= 1 && b.Level <= maxHeadingLevel {
			return "Heading" + strconv.Itoa(b.Level)
		}
	}
	return ""
}

func justification(a docmodel.Alignment) (wml.ST_Jc, bool) {
	switch a {
	case docmodel.AlignLeft:
		return wml.ST_JcLeft, true
	case docmodel.AlignCenter:
		return wml.ST_JcCenter, true
	case docmodel.AlignRight:
		return wml.ST_JcRight, true
	case docmodel.AlignJustify:
		return wml.ST_JcBoth, true
	default:
		return wml.ST_JcUnset, false
	}
}
