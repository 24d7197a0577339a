package docmodel

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2word/internal/pipeline"
)

// Layout constants, in twips unless noted.
const (
	ListIndent       = 720
	QuoteIndent      = 720
	QuoteBorderColor = "888888"
	QuoteBorderSize  = 10 // eighths of a point
	QuoteBorderSpace = 10 // points
	Bullet           = "•"
	RuleGlyph        = "─"
	RuleWidth        = 40 // glyphs
	tableCellSep     = " | "
)

// ListSpacing is applied before and after every list item.
var ListSpacing = Spacing{Before: 60, After: 60}

// headingSpacing maps heading levels to their before/after spacing.
var headingSpacing = map[int]Spacing{
	1: {Before: 480, After: 240},
	2: {Before: 360, After: 180},
	3: {Before: 240, After: 120},
	4: {Before: 200, After: 100},
}

// tagKind is the closed set of element roles the builder distinguishes.
// Anything unlisted is tagOther and contributes its text as a paragraph.
type tagKind int

const (
	tagOther tagKind = iota
	tagHeading
	tagParagraph
	tagList
	tagBlockquote
	tagRule
	tagBold
	tagItalic
	tagContainer
	tagPreformatted
	tagTable
)

func classify(n *html.Node) tagKind {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4:
		return tagHeading
	case atom.P:
		return tagParagraph
	case atom.Ul, atom.Ol:
		return tagList
	case atom.Blockquote:
		return tagBlockquote
	case atom.Hr:
		return tagRule
	case atom.Strong, atom.B:
		return tagBold
	case atom.Em, atom.I:
		return tagItalic
	case atom.Div, atom.Section:
		return tagContainer
	case atom.Pre:
		return tagPreformatted
	case atom.Table:
		return tagTable
	default:
		return tagOther
	}
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	default:
		return 4
	}
}

// Build turns the children of root into blocks in document order.
//
// A centered Title block carrying title is emitted first unless the
// fragment already contains an h1, h2 or h3 anywhere. Whitespace-only
// text never produces a block or a run.
func Build(root *html.Node, title string) []Block {
	b := &builder{}
	if !hasTitleHeading(root) {
		if runs := normalizeRuns([]Run{{Text: title}}); runs != nil {
			b.add(Block{Kind: KindTitle, Runs: runs, Align: AlignCenter})
		}
	}
	b.children(root)
	return b.blocks
}

type builder struct {
	blocks []Block
}

func (b *builder) add(blk Block) {
	b.blocks = append(b.blocks, blk)
}

func (b *builder) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if text := strings.TrimSpace(c.Data); text != "" {
				b.add(Block{Kind: KindParagraph, Runs: []Run{{Text: text}}})
			}
		case html.ElementNode:
			b.element(c)
		}
	}
}

func (b *builder) element(n *html.Node) {
	switch classify(n) {
	case tagHeading:
		b.heading(n)
	case tagParagraph:
		b.paragraph(n)
	case tagList:
		b.list(n, 0)
	case tagBlockquote:
		b.blockquote(n)
	case tagRule:
		b.add(Block{
			Kind:  KindRule,
			Runs:  []Run{{Text: strings.Repeat(RuleGlyph, RuleWidth)}},
			Align: AlignCenter,
		})
	case tagBold:
		b.emphasis(n, runStyle{bold: true})
	case tagItalic:
		b.emphasis(n, runStyle{italic: true})
	case tagContainer:
		b.children(n)
	case tagPreformatted:
		b.preformatted(n)
	case tagTable:
		b.table(n)
	default:
		if text := strings.TrimSpace(pipeline.TextContent(n)); text != "" {
			b.add(Block{Kind: KindParagraph, Runs: []Run{{Text: text}}})
		}
	}
}

func (b *builder) heading(n *html.Node) {
	runs := collectRuns(n, runStyle{}, false)
	if runs == nil {
		return
	}
	level := headingLevel(n.DataAtom)
	spacing := headingSpacing[level]
	b.add(Block{Kind: KindHeading, Level: level, Runs: runs, Spacing: &spacing})
}

// paragraph emits p elements. Quoted paragraphs are indented, bordered and
// italic; any paragraph mentioning "conclusion" is italic.
func (b *builder) paragraph(n *html.Node) {
	inQuote := hasAncestor(n, atom.Blockquote)
	italic := inQuote || pipeline.ContainsConclusion(pipeline.TextContent(n))

	runs := collectRuns(n, runStyle{italic: italic}, false)
	if runs == nil {
		return
	}
	blk := Block{Kind: KindParagraph, Runs: runs}
	if inQuote {
		blk.Indent = QuoteIndent
		blk.Border = quoteBorder()
	}
	b.add(blk)
}

// list emits one item per li child. Nested lists follow their parent item
// with one more level of indentation.
func (b *builder) list(n *html.Node, depth int) {
	ordered := n.DataAtom == atom.Ol
	position := 0
	for li := n.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.DataAtom != atom.Li {
			continue
		}
		position++

		if runs := collectRuns(li, runStyle{}, true); runs != nil {
			prefix := Bullet + " "
			if ordered {
				prefix = strconv.Itoa(position) + ". "
			}
			spacing := ListSpacing
			blk := Block{
				Kind:    KindListItem,
				Ordered: ordered,
				Runs:    normalizeRuns(append([]Run{{Text: prefix}}, runs...)),
				Indent:  ListIndent * (depth + 1),
				Spacing: &spacing,
				Align:   AlignLeft,
			}
			if ordered {
				blk.Index = position
			}
			b.add(blk)
		}

		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && classify(c) == tagList {
				b.list(c, depth+1)
			}
		}
	}
}

// blockquote emits one line per descendant paragraph, or a single line of
// the whole quote text when it has none.
func (b *builder) blockquote(n *html.Node) {
	paragraphs := descendants(n, atom.P)
	if len(paragraphs) == 0 {
		paragraphs = []*html.Node{n}
	}
	for _, p := range paragraphs {
		bold := pipeline.ContainsConclusion(pipeline.TextContent(p))
		runs := collectRuns(p, runStyle{bold: bold, italic: true}, false)
		if runs == nil {
			continue
		}
		b.add(Block{
			Kind:   KindBlockquoteLine,
			Runs:   runs,
			Indent: QuoteIndent,
			Border: quoteBorder(),
		})
	}
}

func (b *builder) emphasis(n *html.Node, st runStyle) {
	if runs := collectRuns(n, st, false); runs != nil {
		b.add(Block{Kind: KindParagraph, Runs: runs})
	}
}

// preformatted keeps code line breaks and indentation.
func (b *builder) preformatted(n *html.Node) {
	text := strings.TrimRight(pipeline.TextContent(n), "\n")
	if strings.TrimSpace(text) == "" {
		return
	}
	b.add(Block{Kind: KindParagraph, Runs: []Run{{Text: text}}})
}

// table emits one paragraph per row with cells separated by " | ".
// Header rows are bold.
func (b *builder) table(n *html.Node) {
	for _, tr := range descendants(n, atom.Tr) {
		var cells []string
		header := false
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
				continue
			}
			cells = append(cells, strings.Join(strings.Fields(pipeline.TextContent(c)), " "))
			header = header || c.DataAtom == atom.Th
		}
		if strings.TrimSpace(strings.Join(cells, "")) == "" {
			continue
		}
		b.add(Block{Kind: KindParagraph, Runs: []Run{{Text: strings.Join(cells, tableCellSep), Bold: header}}})
	}
}

func quoteBorder() *Border {
	return &Border{Color: QuoteBorderColor, Size: QuoteBorderSize, Space: QuoteBorderSpace}
}

// runStyle is the inherited inline formatting while collecting runs.
type runStyle struct {
	bold   bool
	italic bool
}

type runCollector struct {
	runs       []Run
	afterBreak bool
	skipLists  bool
}

// collectRuns gathers the inline text of n as formatted runs. Returns nil
// when n has no visible text.
func collectRuns(n *html.Node, base runStyle, skipLists bool) []Run {
	rc := &runCollector{skipLists: skipLists}
	rc.walk(n, base)
	return normalizeRuns(rc.runs)
}

func (rc *runCollector) walk(n *html.Node, st runStyle) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			text := c.Data
			if rc.afterBreak {
				// The renderer puts a newline after every <br>.
				text = strings.TrimPrefix(text, "\n")
				rc.afterBreak = false
			}
			rc.runs = append(rc.runs, Run{Text: text, Bold: st.bold, Italic: st.italic})
		case html.ElementNode:
			switch c.DataAtom {
			case atom.Br:
				rc.runs = append(rc.runs, Run{Text: "\n", Bold: st.bold, Italic: st.italic})
				rc.afterBreak = true
			case atom.Strong, atom.B:
				rc.walk(c, runStyle{bold: true, italic: st.italic})
			case atom.Em, atom.I:
				rc.walk(c, runStyle{bold: st.bold, italic: true})
			case atom.Ul, atom.Ol:
				if !rc.skipLists {
					rc.walk(c, st)
				}
			default:
				rc.walk(c, st)
			}
		}
	}
}

// normalizeRuns drops empty runs, folds whitespace-only runs into their
// neighbour, merges adjacent runs with equal formatting and trims the
// outer edges. Returns nil when nothing visible remains.
func normalizeRuns(in []Run) []Run {
	var out []Run
	pending := ""
	for _, r := range in {
		if r.Text == "" {
			continue
		}
		if strings.TrimSpace(r.Text) == "" {
			if len(out) > 0 {
				out[len(out)-1].Text += r.Text
			} else {
				pending += r.Text
			}
			continue
		}
		r.Text = pending + r.Text
		pending = ""
		if len(out) > 0 && out[len(out)-1].Bold == r.Bold && out[len(out)-1].Italic == r.Italic {
			out[len(out)-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil
	}
	out[0].Text = strings.TrimLeftFunc(out[0].Text, unicode.IsSpace)
	last := len(out) - 1
	out[last].Text = strings.TrimRightFunc(out[last].Text, unicode.IsSpace)
	return out
}

func hasTitleHeading(root *html.Node) bool {
	for _, a := range []atom.Atom{atom.H1, atom.H2, atom.H3} {
		if len(descendants(root, a)) > 0 {
			return true
		}
	}
	return false
}

func hasAncestor(n *html.Node, a atom.Atom) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == a {
			return true
		}
	}
	return false
}

// descendants returns the elements below n with atom a, in document order.
func descendants(n *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == a {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(n)
	return found
}
