package pipeline

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fixed colors and fonts written into pasted HTML. Word processors keep
// inline styles, so everything that matters is spelled out per element.
const (
	TextColor             = "#000000"
	LinkColor             = "#0366d6"
	BlockquoteBorder      = "4px solid #cccccc"
	CodeBackground        = "#f5f5f5"
	TableBorder           = "1px solid #dddddd"
	TableHeaderBackground = "#f2f2f2"
	MonospaceFamily       = "Consolas, 'Courier New', monospace"
	MonospaceSize         = "10pt"
	RegionalHeadingFamily = "Calibri, sans-serif"
	RegionalHeadingSize   = "12pt"
)

// DefaultExcludedOrigins lists link targets that are flattened to plain text.
var DefaultExcludedOrigins = []string{"chatgpt.com"}

var headingSizes = map[atom.Atom]string{
	atom.H1: "2em",
	atom.H2: "1.5em",
	atom.H3: "1.17em",
	atom.H4: "1em",
	atom.H5: "0.83em",
	atom.H6: "0.67em",
}

// structuralSelector matches elements that have their own rules, plus their
// content, so the regional catch-all does not override them.
const structuralSelector = "h1, h2, h3, h4, h5, h6, p, ul, ol, li, blockquote, pre, code, " +
	"table, thead, tbody, tfoot, tr, th, td, br, hr, img"

var conclusionPattern = regexp.MustCompile(`(?i)conclusion`)

// ContainsConclusion reports whether s mentions "conclusion" in any case.
func ContainsConclusion(s string) bool {
	return conclusionPattern.MatchString(s)
}

// StyleConfig is the typography applied to pasted HTML. Values are already
// resolved: a regional preset has replaced the user's choices before this point.
type StyleConfig struct {
	FontFamily      string
	FontSize        string
	LineHeight      string
	Align           string
	Regional        bool
	ExcludedOrigins []string
}

// StylizeHTML parses content, applies Stylize and renders the result.
func StylizeHTML(content string, cfg StyleConfig) (string, error) {
	root, err := ParseFragment(content)
	if err != nil {
		return "", err
	}
	return RenderFragment(Stylize(root, cfg))
}

// Stylize returns a copy of root with inline styles rewritten for pasting
// into a word processor. root itself is not modified. Applying Stylize to
// its own output yields the same tree.
func Stylize(root *html.Node, cfg StyleConfig) *html.Node {
	clone := CloneTree(root)
	doc := goquery.NewDocumentFromNode(clone)

	flattenExcludedLinks(doc, cfg.ExcludedOrigins)
	emphasizeConclusions(doc)

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		updateStyle(sel, func(st *inlineStyle) {
			st.set("color", TextColor)
			st.set("background-color", "transparent")
		})
	})

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		updateStyle(sel, func(st *inlineStyle) {
			st.set("color", LinkColor)
			st.set("text-decoration", "underline")
		})
	})

	styleHeadings(doc, cfg)
	styleParagraphs(doc, cfg)
	styleBlockquotes(doc, cfg)
	styleLists(doc, cfg)
	styleCode(doc)
	styleTables(doc)

	if cfg.Regional {
		doc.Find("*").Not(structuralSelector).Each(func(_ int, sel *goquery.Selection) {
			if sel.ParentsFiltered("pre").Length() > 0 {
				return
			}
			updateStyle(sel, func(st *inlineStyle) {
				setTypography(st, cfg)
				st.set("text-align", "justify")
			})
		})
	}

	return clone
}

// updateStyle parses the style attribute of sel, lets fn modify it and
// writes it back.
func updateStyle(sel *goquery.Selection, fn func(*inlineStyle)) {
	st := parseInlineStyle(sel.AttrOr("style", ""))
	fn(st)
	sel.SetAttr("style", st.String())
}

func setTypography(st *inlineStyle, cfg StyleConfig) {
	st.set("font-family", cfg.FontFamily)
	st.set("font-size", cfg.FontSize)
	st.set("line-height", cfg.LineHeight)
}

// flattenExcludedLinks replaces anchors pointing at excluded origins with a
// span carrying the anchor text and its previous font weight.
func flattenExcludedLinks(doc *goquery.Document, origins []string) {
	if len(origins) == 0 {
		return
	}
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		if !isExcludedHref(sel.AttrOr("href", ""), origins) {
			return
		}
		weight, ok := parseInlineStyle(sel.AttrOr("style", "")).get("font-weight")
		if !ok {
			weight = "inherit"
		}
		span := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Span,
			Data:     "span",
			Attr:     []html.Attribute{{Key: "style", Val: "font-weight: " + weight}},
		}
		span.AppendChild(&html.Node{Type: html.TextNode, Data: sel.Text()})
		sel.ReplaceWithNodes(span)
	})
}

func isExcludedHref(href string, origins []string) bool {
	href = strings.ToLower(href)
	for _, origin := range origins {
		if origin != "" && strings.Contains(href, strings.ToLower(origin)) {
			return true
		}
	}
	return false
}

func styleHeadings(doc *goquery.Document, cfg StyleConfig) {
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		level := sel.Get(0).DataAtom
		updateStyle(sel, func(st *inlineStyle) {
			st.set("font-weight", "bold")
			st.set("margin-top", "1em")
			st.set("margin-bottom", "0.5em")
			if cfg.Regional {
				st.set("font-family", RegionalHeadingFamily)
				st.set("font-size", RegionalHeadingSize)
				return
			}
			st.set("font-family", cfg.FontFamily)
			st.set("font-size", headingSizes[level])
		})
	})
}

func styleParagraphs(doc *goquery.Document, cfg StyleConfig) {
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		inQuote := sel.ParentsFiltered("blockquote").Length() > 0
		inList := sel.ParentsFiltered("li").Length() > 0
		updateStyle(sel, func(st *inlineStyle) {
			st.set("margin-top", "0")
			st.set("margin-bottom", "1em")
			setTypography(st, cfg)
			switch {
			case inQuote:
				// Quotes keep whatever alignment they inherit.
			case inList:
				st.set("text-align", "left")
			default:
				st.set("text-align", cfg.Align)
			}
		})
	})
}

// conclusionParagraph returns the first paragraph of a blockquote when it
// mentions a conclusion.
func conclusionParagraph(blockquote *goquery.Selection) *goquery.Selection {
	first := blockquote.ChildrenFiltered("p").First()
	if first.Length() == 0 || !ContainsConclusion(first.Text()) {
		return nil
	}
	return first
}

// emphasizeConclusions wraps the conclusion keyword in <strong>. It runs
// before any styling pass so the new element is styled like the rest.
func emphasizeConclusions(doc *goquery.Document) {
	doc.Find("blockquote").Each(func(_ int, sel *goquery.Selection) {
		if first := conclusionParagraph(sel); first != nil {
			emphasizeConclusion(first.Get(0))
		}
	})
}

func styleBlockquotes(doc *goquery.Document, cfg StyleConfig) {
	doc.Find("blockquote").Each(func(_ int, sel *goquery.Selection) {
		conclusion := conclusionParagraph(sel) != nil
		updateStyle(sel, func(st *inlineStyle) {
			st.set("border-left", BlockquoteBorder)
			st.set("padding-left", "1em")
			st.set("margin-left", "0")
			if cfg.Regional || conclusion {
				st.set("font-style", "italic")
			}
		})
	})
}

func styleLists(doc *goquery.Document, cfg StyleConfig) {
	doc.Find("ul, ol").Each(func(_ int, sel *goquery.Selection) {
		updateStyle(sel, func(st *inlineStyle) {
			st.set("text-align", "left")
			st.set("padding-left", "2em")
			st.set("margin-top", "1em")
			st.set("margin-bottom", "1em")
		})
	})
	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		updateStyle(sel, func(st *inlineStyle) {
			setTypography(st, cfg)
			st.set("text-align", "left")
			st.set("margin-bottom", "0.5em")
		})
	})
}

func styleCode(doc *goquery.Document) {
	doc.Find("pre").Each(func(_ int, sel *goquery.Selection) {
		updateStyle(sel, func(st *inlineStyle) {
			st.set("font-family", MonospaceFamily)
			st.set("font-size", MonospaceSize)
			st.set("background-color", CodeBackground)
			st.set("padding", "1em")
		})
	})
	doc.Find("code").Each(func(_ int, sel *goquery.Selection) {
		updateStyle(sel, func(st *inlineStyle) {
			st.set("font-family", MonospaceFamily)
			st.set("font-size", MonospaceSize)
		})
	})
}

func styleTables(doc *goquery.Document) {
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		updateStyle(sel, func(st *inlineStyle) {
			st.set("border-collapse", "collapse")
			st.set("margin-bottom", "1em")
		})
	})
	doc.Find("th, td").Each(func(_ int, sel *goquery.Selection) {
		updateStyle(sel, func(st *inlineStyle) {
			st.set("border", TableBorder)
			st.set("padding", "8px")
		})
	})
	doc.Find("th").Each(func(_ int, sel *goquery.Selection) {
		updateStyle(sel, func(st *inlineStyle) {
			st.set("font-weight", "bold")
			st.set("background-color", TableHeaderBackground)
		})
	})
}

// emphasizeConclusion wraps the first "conclusion" match in p with <strong>.
// Nothing happens when that match is already inside strong or b.
func emphasizeConclusion(p *html.Node) {
	text, loc := firstConclusionText(p)
	if text == nil || hasBoldAncestor(text, p) {
		return
	}

	parent := text.Parent
	before, match, after := text.Data[:loc[0]], text.Data[loc[0]:loc[1]], text.Data[loc[1]:]

	if before != "" {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: before}, text)
	}
	strong := &html.Node{Type: html.ElementNode, DataAtom: atom.Strong, Data: "strong"}
	strong.AppendChild(&html.Node{Type: html.TextNode, Data: match})
	parent.InsertBefore(strong, text)

	if after == "" {
		parent.RemoveChild(text)
		return
	}
	text.Data = after
}

func firstConclusionText(n *html.Node) (*html.Node, []int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			if loc := conclusionPattern.FindStringIndex(c.Data); loc != nil {
				return c, loc
			}
			continue
		}
		if found, loc := firstConclusionText(c); found != nil {
			return found, loc
		}
	}
	return nil, nil
}

func hasBoldAncestor(n, stop *html.Node) bool {
	for p := n.Parent; p != nil && p != stop; p = p.Parent {
		if p.DataAtom == atom.Strong || p.DataAtom == atom.B {
			return true
		}
	}
	return false
}
