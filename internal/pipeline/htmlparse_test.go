package pipeline

import (
	"testing"

	"golang.org/x/net/html"
)

func TestParseFragment_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single paragraph", "<p>World</p>", "<p>World</p>"},
		{"siblings kept in order", "<h1>A</h1>\n<p>B</p>", "<h1>A</h1>\n<p>B</p>"},
		{"no document wrapper added", "text", "text"},
		{"self closing br", "<p>a<br />b</p>", "<p>a<br/>b</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := ParseFragment(tt.input)
			if err != nil {
				t.Fatalf("ParseFragment() error = %v", err)
			}
			got, err := RenderFragment(root)
			if err != nil {
				t.Fatalf("RenderFragment() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("round trip = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCloneTree_Independent(t *testing.T) {
	t.Parallel()

	root, err := ParseFragment(`<p style="a: b">x</p>`)
	if err != nil {
		t.Fatal(err)
	}
	clone := CloneTree(root)

	p := clone.FirstChild
	p.Attr[0].Val = "changed"
	p.FirstChild.Data = "y"
	p.AppendChild(&html.Node{Type: html.TextNode, Data: "z"})

	got, _ := RenderFragment(root)
	if want := `<p style="a: b">x</p>`; got != want {
		t.Errorf("original modified through clone: %q, want %q", got, want)
	}
}

func TestTextContent(t *testing.T) {
	t.Parallel()

	root, err := ParseFragment("<p>a <strong>b</strong> <em>c<code>d</code></em></p>")
	if err != nil {
		t.Fatal(err)
	}
	if got := TextContent(root); got != "a b cd" {
		t.Errorf("TextContent() = %q, want %q", got, "a b cd")
	}
}
