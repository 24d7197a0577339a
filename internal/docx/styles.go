package docx

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"baliance.com/gooxml"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/ofc/sharedTypes"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/alnah/go-md2word/internal/assets"
	"github.com/alnah/go-md2word/internal/docmodel"
	"github.com/alnah/go-md2word/internal/yamlutil"
)

const maxHeadingLevel = 4

// Heading and title sizes in half-points when the document does not fix
// a single heading size.
var defaultHeadingSizes = [maxHeadingLevel]int{32, 28, 26, 24}

const (
	defaultTitleSize = 56
	// Regional titles sit just above the uniform heading size.
	regionalTitleDelta = 4
)

const normalStyle = "Normal"

type headingStyle struct {
	Level        int
	OutlineLevel int
	Size         int
}

// stylesData is what the styles template is executed with.
type stylesData struct {
	FontFamily         string
	FontSizeHalfPoints int
	Language           string
	LineSpacing        int
	HeadingFont        string
	TitleSize          int
	Headings           []headingStyle
}

func newStylesData(d docmodel.Defaults) stylesData {
	data := stylesData{
		FontFamily:         d.FontFamily,
		FontSizeHalfPoints: d.FontSizeHalfPoints,
		Language:           d.Language,
		LineSpacing:        d.LineSpacing,
		HeadingFont:        d.HeadingFont,
		TitleSize:          defaultTitleSize,
	}
	if data.Language == "" {
		data.Language = docmodel.DefaultLanguage
	}
	if d.HeadingSizeHalfPoints > 0 {
		data.TitleSize = d.HeadingSizeHalfPoints + regionalTitleDelta
	}
	for i := range maxHeadingLevel {
		size := defaultHeadingSizes[i]
		if d.HeadingSizeHalfPoints > 0 {
			size = d.HeadingSizeHalfPoints
		}
		data.Headings = append(data.Headings, headingStyle{Level: i + 1, OutlineLevel: i, Size: size})
	}
	return data
}

// styleSheet is the rendered styles template.
type styleSheet struct {
	Defaults sheetDefaults `yaml:"defaults"`
	Styles   []sheetStyle  `yaml:"styles"`
}

// sheetDefaults become the document defaults and the Normal style.
type sheetDefaults struct {
	Font        string `yaml:"font"`
	Size        int    `yaml:"size"`
	Language    string `yaml:"language"`
	LineSpacing int    `yaml:"lineSpacing"`
	SpaceAfter  int    `yaml:"spaceAfter"`
}

// sheetStyle is a paragraph style based on Normal.
type sheetStyle struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Font         string `yaml:"font"`
	Size         int    `yaml:"size"`
	Bold         bool   `yaml:"bold"`
	Italic       bool   `yaml:"italic"`
	Align        string `yaml:"align"`
	SpaceBefore  int    `yaml:"spaceBefore"`
	SpaceAfter   int    `yaml:"spaceAfter"`
	KeepNext     bool   `yaml:"keepNext"`
	OutlineLevel *int   `yaml:"outlineLevel"`
}

var sheetAlignments = map[string]wml.ST_Jc{
	"left":    wml.ST_JcLeft,
	"center":  wml.ST_JcCenter,
	"right":   wml.ST_JcRight,
	"justify": wml.ST_JcBoth,
}

func (s *styleSheet) validate() error {
	seen := make(map[string]bool, len(s.Styles))
	for i, st := range s.Styles {
		switch {
		case st.ID == "":
			return fmt.Errorf("styles[%d]: missing id", i)
		case st.ID == normalStyle:
			return fmt.Errorf("styles[%d]: %s is built from defaults", i, normalStyle)
		case seen[st.ID]:
			return fmt.Errorf("styles[%d]: duplicate id %q", i, st.ID)
		}
		seen[st.ID] = true
		if _, ok := sheetAlignments[st.Align]; st.Align != "" && !ok {
			return fmt.Errorf("styles[%d]: unknown align %q", i, st.Align)
		}
	}
	return nil
}

var templateFuncs = template.FuncMap{
	"quote": strconv.Quote,
}

// parseStyles loads and parses the styles template.
func parseStyles(loader assets.AssetLoader) (*template.Template, error) {
	content, err := loader.LoadTemplate(assets.WordStyles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStylesTemplate, err)
	}
	tmpl, err := template.New(assets.WordStyles).Funcs(templateFuncs).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStylesTemplate, err)
	}
	return tmpl, nil
}

// renderStyleSheet executes tmpl with d and decodes the result.
func renderStyleSheet(tmpl *template.Template, d docmodel.Defaults) (*styleSheet, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newStylesData(d)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStylesTemplate, err)
	}
	var sheet styleSheet
	if err := yamlutil.UnmarshalStrict(buf.Bytes(), &sheet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStylesTemplate, err)
	}
	if err := sheet.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStylesTemplate, err)
	}
	return &sheet, nil
}

// applyStyleSheet replaces the styles gooxml starts a document with.
func applyStyleSheet(d *document.Document, sheet *styleSheet) {
	x := d.Styles.X()
	x.Style = nil
	x.LatentStyles = nil
	x.DocDefaults = wml.NewCT_DocDefaults()
	x.DocDefaults.RPrDefault = wml.NewCT_RPrDefault()
	x.DocDefaults.RPrDefault.RPr = wml.NewCT_RPr()

	rpr := x.DocDefaults.RPrDefault.RPr
	if f := sheet.Defaults.Font; f != "" {
		rpr.RFonts = wml.NewCT_Fonts()
		rpr.RFonts.AsciiAttr = gooxml.String(f)
		rpr.RFonts.HAnsiAttr = gooxml.String(f)
		rpr.RFonts.EastAsiaAttr = gooxml.String(f)
		rpr.RFonts.CsAttr = gooxml.String(f)
	}
	if sz := sheet.Defaults.Size; sz > 0 {
		rpr.Sz = wml.NewCT_HpsMeasure()
		rpr.Sz.ValAttr.ST_UnsignedDecimalNumber = gooxml.Uint64(uint64(sz))
		rpr.SzCs = wml.NewCT_HpsMeasure()
		rpr.SzCs.ValAttr.ST_UnsignedDecimalNumber = gooxml.Uint64(uint64(sz))
	}
	if lang := sheet.Defaults.Language; lang != "" {
		rpr.Lang = wml.NewCT_Language()
		rpr.Lang.ValAttr = gooxml.String(lang)
	}

	normal := d.Styles.AddStyle(normalStyle, wml.ST_StyleTypeParagraph, true)
	normal.SetName(normalStyle)
	normal.SetPrimaryStyle(true)
	ppr := normal.ParagraphProperties().X()
	ppr.Spacing = wml.NewCT_Spacing()
	ppr.Spacing.AfterAttr = twipsMeasure(sheet.Defaults.SpaceAfter)
	if ls := sheet.Defaults.LineSpacing; ls > 0 {
		ppr.Spacing.LineAttr = &wml.ST_SignedTwipsMeasure{Int64: gooxml.Int64(int64(ls))}
		ppr.Spacing.LineRuleAttr = wml.ST_LineSpacingRuleAuto
	}

	for _, st := range sheet.Styles {
		addSheetStyle(d, st)
	}
}

func addSheetStyle(d *document.Document, st sheetStyle) {
	style := d.Styles.AddStyle(st.ID, wml.ST_StyleTypeParagraph, false)
	name := st.Name
	if name == "" {
		name = st.ID
	}
	style.SetName(name)
	style.SetBasedOn(normalStyle)
	style.SetNextStyle(normalStyle)
	style.SetPrimaryStyle(true)

	pp := style.ParagraphProperties()
	if st.SpaceBefore > 0 || st.SpaceAfter > 0 {
		pp.SetSpacing(twips(st.SpaceBefore), twips(st.SpaceAfter))
	}
	if jc, ok := sheetAlignments[st.Align]; ok {
		pp.SetAlignment(jc)
	}
	if st.KeepNext {
		pp.SetKeepNext(true)
	}
	if st.OutlineLevel != nil {
		pp.SetOutlineLevel(*st.OutlineLevel)
	}

	rp := style.RunProperties()
	if st.Font != "" {
		rp.SetFontFamily(st.Font)
	}
	if st.Size > 0 {
		rp.SetSize(halfPoints(st.Size))
	}
	if st.Bold {
		rp.SetBold(true)
	}
	if st.Italic {
		rp.SetItalic(true)
	}
}

// twips converts a twip count to a Distance. The quarter twip keeps
// gooxml's truncating conversion back to twips from landing on v-1.
func twips(v int) measurement.Distance {
	return (measurement.Distance(v) + 0.25) * measurement.Twips
}

func halfPoints(v int) measurement.Distance {
	return measurement.Distance(v) / 2 * measurement.Point
}

func twipsMeasure(v int) *sharedTypes.ST_TwipsMeasure {
	return &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(uint64(v))}
}
