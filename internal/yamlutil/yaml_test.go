package yamlutil_test

// Notes:
// - Marshal's error branch is not tested: goccy/go-yaml only fails on
//   channels and functions, which no caller passes.
// - TestInputSizeLimit mutates MaxInputSize and therefore does not run in
//   parallel.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2word/internal/yamlutil"
)

type styleSection struct {
	FontFamily string `yaml:"fontFamily"`
	Regional   bool   `yaml:"regional"`
}

type testConfig struct {
	Title string       `yaml:"title"`
	Style styleSection `yaml:"style"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML and rejects unknown keys
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		dest       any
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "valid nested YAML",
			data: "title: Hausarbeit\nstyle:\n  fontFamily: Georgia\n  regional: true\n",
			dest: &testConfig{},
		},
		{
			name:    "empty data",
			data:    "",
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    "title: x",
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:       "unknown field",
			data:       "title: x\nstyle:\n  fontFamliy: Georgia\n",
			dest:       &testConfig{},
			wantErrMsg: "yamlutil:",
		},
		{
			name:       "syntax error",
			data:       "title: [unclosed",
			dest:       &testConfig{},
			wantErrMsg: "yamlutil:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict([]byte(tt.data), tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantErrMsg != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Errorf("error = %v, want message containing %q", err, tt.wantErrMsg)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				cfg := tt.dest.(*testConfig)
				if cfg.Title != "Hausarbeit" || cfg.Style.FontFamily != "Georgia" || !cfg.Style.Regional {
					t.Errorf("decoded = %+v", cfg)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Encodes structs as YAML
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	in := testConfig{Title: "Notes", Style: styleSection{FontFamily: "Arial"}}
	out, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"title: Notes", "fontFamily: Arial", "regional: false"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, out)
		}
	}

	var back testConfig
	if err := yamlutil.UnmarshalStrict(out, &back); err != nil {
		t.Fatalf("UnmarshalStrict(Marshal()) error = %v", err)
	}
	if back != in {
		t.Errorf("round trip = %+v, want %+v", back, in)
	}
}

func TestMarshal_IndentsSequences(t *testing.T) {
	t.Parallel()

	in := struct {
		Links struct {
			ExcludedOrigins []string `yaml:"excludedOrigins"`
		} `yaml:"links"`
	}{}
	in.Links.ExcludedOrigins = []string{"chatgpt.com"}

	out, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	indent := map[string]int{}
	for _, line := range strings.Split(string(out), "\n") {
		trimmed := strings.TrimLeft(line, " ")
		indent[trimmed] = len(line) - len(trimmed)
	}
	if indent["- chatgpt.com"] <= indent["excludedOrigins:"] {
		t.Errorf("sequence should be indented under its key:\n%s", out)
	}

	var back struct {
		Links struct {
			ExcludedOrigins []string `yaml:"excludedOrigins"`
		} `yaml:"links"`
	}
	if err := yamlutil.UnmarshalStrict(out, &back); err != nil {
		t.Fatalf("output should decode strictly: %v", err)
	}
	if len(back.Links.ExcludedOrigins) != 1 || back.Links.ExcludedOrigins[0] != "chatgpt.com" {
		t.Errorf("decoded origins = %v", back.Links.ExcludedOrigins)
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Rejects oversized documents
// ---------------------------------------------------------------------------

func TestInputSizeLimit(t *testing.T) {
	orig := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = orig })
	yamlutil.MaxInputSize = 16

	err := yamlutil.UnmarshalStrict([]byte("title: "+strings.Repeat("x", 32)), &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}
