package md2word

// Notes:
// - fakeClipboard fails the first N HTML and text writes so every step of
//   the fallback chain can be reached deterministically.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var errClipboard = errors.New("clipboard unavailable")

type fakeClipboard struct {
	htmlFailures int
	textFailures int
	html         []string
	text         []string
}

func (f *fakeClipboard) WriteHTML(_ context.Context, html string) error {
	if f.htmlFailures > 0 {
		f.htmlFailures--
		return errClipboard
	}
	f.html = append(f.html, html)
	return nil
}

func (f *fakeClipboard) WriteText(_ context.Context, text string) error {
	if f.textFailures > 0 {
		f.textFailures--
		return errClipboard
	}
	f.text = append(f.text, text)
	return nil
}

var _ ClipboardWriter = (*fakeClipboard)(nil)

// ---------------------------------------------------------------------------
// TestCopy - fallback chain
// ---------------------------------------------------------------------------

func TestCopy(t *testing.T) {
	t.Parallel()

	const markdown = "Some **bold** text"

	tests := []struct {
		name     string
		clip     *fakeClipboard
		opts     []Option
		want     CopyOutcome
		wantHTML string
		wantText string
	}{
		{
			name:     "styled HTML",
			clip:     &fakeClipboard{},
			want:     CopiedStyledHTML,
			wantHTML: "font-family:",
		},
		{
			name:     "unstyled HTML after styled failure",
			clip:     &fakeClipboard{htmlFailures: 1},
			want:     CopiedRawHTML,
			wantHTML: "<strong>bold</strong>",
		},
		{
			name:     "plain text of HTML",
			clip:     &fakeClipboard{htmlFailures: 2},
			want:     CopiedHTMLText,
			wantText: "Some bold text",
		},
		{
			name:     "markdown as last resort",
			clip:     &fakeClipboard{htmlFailures: 2, textFailures: 1},
			want:     CopiedMarkdown,
			wantText: markdown,
		},
		{
			name: "everything fails",
			clip: &fakeClipboard{htmlFailures: 2, textFailures: 2},
			want: CopyFailed,
		},
		{
			name:     "rendering failure copies markdown",
			clip:     &fakeClipboard{},
			opts:     []Option{withHTMLConverter(&mockHTMLConverter{err: ErrHTMLConversion})},
			want:     CopiedMarkdown,
			wantText: markdown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := newTestConverter(t, tt.opts...)
			got := conv.Copy(context.Background(), Input{Markdown: markdown}, tt.clip)
			if got != tt.want {
				t.Fatalf("Copy() = %v, want %v", got, tt.want)
			}
			if tt.wantHTML != "" && (len(tt.clip.html) != 1 || !strings.Contains(tt.clip.html[0], tt.wantHTML)) {
				t.Errorf("html writes = %q, want one containing %q", tt.clip.html, tt.wantHTML)
			}
			if tt.wantText != "" && (len(tt.clip.text) != 1 || tt.clip.text[0] != tt.wantText) {
				t.Errorf("text writes = %q, want [%q]", tt.clip.text, tt.wantText)
			}
		})
	}
}

func TestCopy_TerminalFailureIsLogged(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	conv := newTestConverter(t, WithLogger(logger))

	got := conv.Copy(context.Background(), Input{Markdown: "x"}, &fakeClipboard{htmlFailures: 2, textFailures: 2})
	if got != CopyFailed {
		t.Fatalf("Copy() = %v, want CopyFailed", got)
	}
	last := hook.LastEntry()
	if last == nil || last.Level != logrus.ErrorLevel {
		t.Fatalf("last entry = %v, want error level", last)
	}
	if last.Data["stage"] != "clipboard" {
		t.Errorf("stage field = %v", last.Data["stage"])
	}
}

func TestCopy_InvalidInput(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{}
	if got := newTestConverter(t).Copy(context.Background(), Input{}, clip); got != CopyFailed {
		t.Errorf("Copy() = %v, want CopyFailed", got)
	}
	if len(clip.html)+len(clip.text) != 0 {
		t.Error("nothing should be written for invalid input")
	}
}

func TestCopyOutcome_String(t *testing.T) {
	t.Parallel()

	for outcome, want := range map[CopyOutcome]string{
		CopiedStyledHTML: "styled HTML",
		CopiedRawHTML:    "unstyled HTML",
		CopiedHTMLText:   "plain text",
		CopiedMarkdown:   "markdown text",
		CopyFailed:       "nothing",
	} {
		if got := outcome.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", outcome, got, want)
		}
	}
}
