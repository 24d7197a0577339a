package assets

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver(\"\") error = %v", err)
	}
	if r.HasCustomLoader() {
		t.Error("HasCustomLoader() = true for empty path")
	}

	if _, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("invalid path error = %v, want ErrInvalidBasePath", err)
	}
}

func TestAssetResolver_LoadTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplate(t, dir, PreviewPage, "<html>custom</html>")

	r, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !r.HasCustomLoader() {
		t.Fatal("HasCustomLoader() = false")
	}

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		got, err := r.LoadTemplate(PreviewPage)
		if err != nil {
			t.Fatal(err)
		}
		if got != "<html>custom</html>" {
			t.Errorf("LoadTemplate() = %q, want custom content", got)
		}
	})

	t.Run("falls back to embedded", func(t *testing.T) {
		t.Parallel()

		got, err := r.LoadTemplate(WordStyles)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(got, "styles:") {
			t.Error("expected embedded styles template")
		}
	})

	t.Run("validation errors are not fallen back", func(t *testing.T) {
		t.Parallel()

		if _, err := r.LoadTemplate("../x"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("unknown everywhere", func(t *testing.T) {
		t.Parallel()

		if _, err := r.LoadTemplate("nope"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("error = %v, want ErrTemplateNotFound", err)
		}
	})
}
