package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	bookdocx "github.com/alnah/go-bookdocx"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	t.Run("overlays fields and recomputes content width", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `
bodyFont: Palatino
bodySize: 12
page:
  width: 11906
  margins:
    left: 1000
    right: 1000
`)
		style, err := loadStyle(path)
		if err != nil {
			t.Fatalf("loadStyle() = %v", err)
		}
		if style.BodyFont != "Palatino" {
			t.Errorf("BodyFont = %q", style.BodyFont)
		}
		if style.BodySize != 12 {
			t.Errorf("BodySize = %v", style.BodySize)
		}
		want := 11906 - 1000 - 1000
		if style.PageContentWidth != want {
			t.Errorf("PageContentWidth = %d, want %d", style.PageContentWidth, want)
		}
		// Untouched fields keep their defaults.
		def := bookdocx.DefaultStyle()
		if style.CodeFont != def.CodeFont {
			t.Errorf("CodeFont = %q, want default %q", style.CodeFont, def.CodeFont)
		}
		if style.PageHeight != def.PageHeight {
			t.Errorf("PageHeight = %d, want default %d", style.PageHeight, def.PageHeight)
		}
	})

	t.Run("named preset", func(t *testing.T) {
		t.Parallel()
		style, err := loadStyle("manuscript")
		if err != nil {
			t.Fatalf("loadStyle() = %v", err)
		}
		if style.BodyFont != "Times New Roman" {
			t.Errorf("BodyFont = %q", style.BodyFont)
		}
		if style.BodySize != 12 {
			t.Errorf("BodySize = %v", style.BodySize)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		t.Parallel()
		_, err := loadStyle("nonexistent")
		if !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("loadStyle() = %v, want %v", err, ErrUnknownStyle)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := loadStyle(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("loadStyle() = %v, want %v", err, ErrConfigNotFound)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "bodyFont: Palatino\nmystery: value\n")
		_, err := loadStyle(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("loadStyle() = %v, want %v", err, ErrConfigParse)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "bodyFont: [unclosed\n")
		_, err := loadStyle(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("loadStyle() = %v, want %v", err, ErrConfigParse)
		}
	})
}

func TestApplyConfig_ZeroConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	def := bookdocx.DefaultStyle()
	got := applyConfig(def, StyleConfig{})
	if got != def {
		t.Errorf("applyConfig(defaults, empty) = %+v, want unchanged defaults", got)
	}
}
