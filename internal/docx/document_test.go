package docx

import (
	"regexp"
	"strings"
	"testing"

	"baliance.com/gooxml/measurement"

	"github.com/alnah/go-md2word/internal/docmodel"
)

// documentPart serializes blocks with default margins and returns
// word/document.xml.
func documentPart(t *testing.T, blocks ...docmodel.Block) string {
	t.Helper()

	doc := &docmodel.Document{
		Meta:   docmodel.Meta{Margins: docmodel.DefaultMargins, Created: testCreated},
		Blocks: blocks,
	}
	return readPackage(t, mustBytes(t, mustWriter(t), doc))[partDocument]
}

func TestAddParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		block  docmodel.Block
		want   []string
		absent []string
		breaks int
	}{
		{
			name:   "plain paragraph",
			block:  docmodel.Block{Kind: docmodel.KindParagraph, Runs: []docmodel.Run{{Text: "hi"}}},
			want:   []string{`<w:t[^>]*>hi</w:t>`},
			absent: []string{`<w:pStyle`, `<w:b[ />]`, `<w:jc`},
		},
		{
			name:  "title",
			block: docmodel.Block{Kind: docmodel.KindTitle, Align: docmodel.AlignCenter, Runs: []docmodel.Run{{Text: "T"}}},
			want:  []string{`<w:pStyle w:val="Title"`, `<w:jc w:val="center"`},
		},
		{
			name: "heading with spacing",
			block: docmodel.Block{
				Kind: docmodel.KindHeading, Level: 2,
				Spacing: &docmodel.Spacing{Before: 360, After: 180},
				Runs:    []docmodel.Run{{Text: "H"}},
			},
			want: []string{`<w:pStyle w:val="Heading2"`, `<w:spacing[^>]* w:before="360"`, `<w:spacing[^>]* w:after="180"`},
		},
		{
			name:   "heading beyond level four has no style",
			block:  docmodel.Block{Kind: docmodel.KindHeading, Level: 6, Runs: []docmodel.Run{{Text: "x"}}},
			absent: []string{`<w:pStyle`},
		},
		{
			name: "blockquote line with border and indent",
			block: docmodel.Block{
				Kind: docmodel.KindBlockquoteLine, Indent: 720,
				Border: &docmodel.Border{Color: "888888", Size: 10, Space: 10},
				Runs:   []docmodel.Run{{Text: "q", Italic: true, Bold: true}},
			},
			want: []string{
				`<w:pBdr><w:left[^>]* w:val="single"`,
				`<w:left[^>]* w:color="888888"`,
				`<w:left[^>]* w:sz="10"`,
				`<w:left[^>]* w:space="10"`,
				`<w:ind[^>]* w:(start|left)="720"`,
				`<w:b[ />]`,
				`<w:i[ />]`,
			},
		},
		{
			name:  "justify maps to both",
			block: docmodel.Block{Kind: docmodel.KindParagraph, Align: docmodel.AlignJustify, Runs: []docmodel.Run{{Text: "j"}}},
			want:  []string{`<w:jc w:val="both"`},
		},
		{
			name:   "line breaks",
			block:  docmodel.Block{Kind: docmodel.KindParagraph, Runs: []docmodel.Run{{Text: "a\nb\n"}}},
			want:   []string{`>a</w:t>`, `>b</w:t>`},
			breaks: 2,
		},
		{
			name:  "escapes text",
			block: docmodel.Block{Kind: docmodel.KindParagraph, Runs: []docmodel.Run{{Text: `a<b & "c"`}}},
			want:  []string{`a&lt;b &amp; `},
		},
		{
			name:   "empty runs are skipped",
			block:  docmodel.Block{Kind: docmodel.KindParagraph, Runs: []docmodel.Run{{Text: ""}}},
			absent: []string{`<w:r[ >]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := documentPart(t, tt.block)
			assertMatches(t, "document.xml", got, tt.want...)
			assertNoMatch(t, "document.xml", got, tt.absent...)
			if n := len(regexp.MustCompile(`<w:br[ />]`).FindAllString(got, -1)); n != tt.breaks {
				t.Errorf("breaks = %d, want %d", n, tt.breaks)
			}
		})
	}
}

func TestSetupSection(t *testing.T) {
	t.Parallel()

	got := documentPart(t)

	assertMatches(t, "document.xml", got,
		`<w:pgSz[^>]* w:w="11906"`,
		`<w:pgSz[^>]* w:h="16838"`,
		`<w:pgMar[^>]* w:top="1440"`,
		`<w:pgMar[^>]* w:right="1440"`,
		`<w:pgMar[^>]* w:bottom="1440"`,
		`<w:pgMar[^>]* w:left="1440"`,
		`<w:pgMar[^>]* w:header="708"`,
	)
	if !strings.HasSuffix(strings.TrimSpace(got), "</w:document>") {
		t.Error("document.xml not closed")
	}
}

func TestTwips(t *testing.T) {
	t.Parallel()

	// 43 and 708 come back one short without the quarter twip.
	for _, v := range []int{0, 43, 60, 708, 720, 1400, 1440, 1700, 11906, 16838} {
		if got := int64(twips(v) / measurement.Twips); got != int64(v) {
			t.Errorf("twips(%d) converts back to %d", v, got)
		}
	}
}
