package main

import (
	"errors"
	"fmt"
	"os"

	bookdocx "github.com/alnah/go-bookdocx"
	"github.com/alnah/go-bookdocx/internal/fileutil"
	"github.com/alnah/go-bookdocx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrUnknownStyle   = errors.New("unknown style preset")
)

// StyleConfig is the YAML surface for overriding style constants. Zero
// fields keep their defaults.
type StyleConfig struct {
	BodyFont    string     `yaml:"bodyFont"`
	CodeFont    string     `yaml:"codeFont"`
	BodySize    float64    `yaml:"bodySize"` // points
	DarkColor   string     `yaml:"darkColor"`
	AccentColor string     `yaml:"accentColor"`
	Page        PageConfig `yaml:"page"`
}

// PageConfig holds page geometry overrides in twips.
type PageConfig struct {
	Width   int          `yaml:"width"`
	Height  int          `yaml:"height"`
	Margins MarginConfig `yaml:"margins"`
}

// MarginConfig holds per-side margins in twips.
type MarginConfig struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// stylePresets are named style overlays selectable by --config without a
// file. A value containing a path separator is treated as a file instead.
var stylePresets = map[string]StyleConfig{
	"default": {},
	"manuscript": {
		BodyFont: "Times New Roman",
		BodySize: 12,
	},
	"compact": {
		BodySize: 10,
		Page: PageConfig{
			Margins: MarginConfig{Top: 1080, Bottom: 1080, Left: 1080, Right: 1080},
		},
	},
}

// loadStyle resolves a preset name or YAML file path and overlays it on the
// defaults. The content width is recomputed from page width and horizontal
// margins.
func loadStyle(nameOrPath string) (bookdocx.StyleConstants, error) {
	style := bookdocx.DefaultStyle()

	if !fileutil.IsFilePath(nameOrPath) {
		cfg, ok := stylePresets[nameOrPath]
		if !ok {
			return style, fmt.Errorf("%w: %s", ErrUnknownStyle, nameOrPath)
		}
		return applyConfig(style, cfg), nil
	}

	if !fileutil.FileExists(nameOrPath) {
		return style, fmt.Errorf("%w: %s", ErrConfigNotFound, nameOrPath)
	}
	data, err := os.ReadFile(nameOrPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		return style, fmt.Errorf("reading config file: %w", err)
	}

	var cfg StyleConfig
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return style, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return applyConfig(style, cfg), nil
}

// applyConfig overlays non-zero config fields onto a style value.
func applyConfig(style bookdocx.StyleConstants, cfg StyleConfig) bookdocx.StyleConstants {
	if cfg.BodyFont != "" {
		style.BodyFont = cfg.BodyFont
	}
	if cfg.CodeFont != "" {
		style.CodeFont = cfg.CodeFont
	}
	if cfg.BodySize != 0 {
		style.BodySize = cfg.BodySize
	}
	if cfg.DarkColor != "" {
		style.DarkColor = cfg.DarkColor
	}
	if cfg.AccentColor != "" {
		style.AccentColor = cfg.AccentColor
	}
	if cfg.Page.Width != 0 {
		style.PageWidth = cfg.Page.Width
	}
	if cfg.Page.Height != 0 {
		style.PageHeight = cfg.Page.Height
	}
	if cfg.Page.Margins.Top != 0 {
		style.Margins.Top = cfg.Page.Margins.Top
	}
	if cfg.Page.Margins.Bottom != 0 {
		style.Margins.Bottom = cfg.Page.Margins.Bottom
	}
	if cfg.Page.Margins.Left != 0 {
		style.Margins.Left = cfg.Page.Margins.Left
	}
	if cfg.Page.Margins.Right != 0 {
		style.Margins.Right = cfg.Page.Margins.Right
	}
	style.PageContentWidth = style.PageWidth - style.Margins.Left - style.Margins.Right
	return style
}
