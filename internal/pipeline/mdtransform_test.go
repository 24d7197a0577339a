package pipeline

import (
	"context"
	"testing"
)

func TestPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "# Title\n\nBody", "# Title\n\nBody"},
		{"CRLF normalized", "a\r\nb\r\n", "a\nb\n"},
		{"lone CR normalized", "a\rb", "a\nb"},
		{"BOM stripped", "\uFEFF# Title", "# Title"},
		{"blank line runs compressed", "a\n\n\n\n\nb", "a\n\nb"},
		{"highlight converted", "==key== point", MarkStartPlaceholder + "key" + MarkEndPlaceholder + " point"},
		{"highlight does not span lines", "==a\nb==", "==a\nb=="},
	}

	p := &Preprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocessor_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "a\r\n==b=="
	if got := (&Preprocessor{}).PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("PreprocessMarkdown() = %q, want input unchanged", got)
	}
}

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	got := ConvertMarkPlaceholders("<p>" + MarkStartPlaceholder + "x" + MarkEndPlaceholder + "</p>")
	if want := "<p><mark>x</mark></p>"; got != want {
		t.Errorf("ConvertMarkPlaceholders() = %q, want %q", got, want)
	}
	if got := ConvertMarkPlaceholders("<p>x</p>"); got != "<p>x</p>" {
		t.Errorf("ConvertMarkPlaceholders() without markers = %q", got)
	}
}
