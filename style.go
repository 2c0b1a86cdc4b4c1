package bookdocx

import "fmt"

// Layout bounds. Widths and heights are twips (twentieths of a point).
const (
	MinBodySize = 6.0
	MaxBodySize = 72.0

	MinContentWidth = 1440  // 1 inch
	MaxContentWidth = 20160 // 14 inches

	MinPageMargin = 360  // 0.25 inch
	MaxPageMargin = 4320 // 3 inches
)

// Default visual constants (US Letter, 1 inch margins).
const (
	DefaultBodyFont    = "Georgia"
	DefaultCodeFont    = "Consolas"
	DefaultBodySize    = 11.0
	DefaultDarkColor   = "1F2A40"
	DefaultAccentColor = "2B6CB0"

	defaultPageWidth  = 12240
	defaultPageHeight = 15840
	defaultMargin     = 1440
)

// Margins holds page margins in twips.
type Margins struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// StyleConstants is the single source of truth for visual defaults. It is
// created once before any chapter builder runs and passed by value into
// Assemble and the serializer, so no callee can mutate the caller's copy.
type StyleConstants struct {
	BodyFont         string
	CodeFont         string
	BodySize         float64 // points
	DarkColor        string  // RRGGBB
	AccentColor      string  // RRGGBB
	PageWidth        int     // twips
	PageHeight       int     // twips
	PageContentWidth int     // twips, printable width between margins
	Margins          Margins
}

// DefaultStyle returns the standard configuration: US Letter portrait with
// one inch margins.
func DefaultStyle() StyleConstants {
	return StyleConstants{
		BodyFont:         DefaultBodyFont,
		CodeFont:         DefaultCodeFont,
		BodySize:         DefaultBodySize,
		DarkColor:        DefaultDarkColor,
		AccentColor:      DefaultAccentColor,
		PageWidth:        defaultPageWidth,
		PageHeight:       defaultPageHeight,
		PageContentWidth: defaultPageWidth - 2*defaultMargin,
		Margins:          Margins{Top: defaultMargin, Bottom: defaultMargin, Left: defaultMargin, Right: defaultMargin},
	}
}

// Validate checks fonts, sizes, colors, and page geometry.
func (s StyleConstants) Validate() error {
	if s.BodyFont == "" {
		return fmt.Errorf("%w: body font", ErrInvalidFont)
	}
	if s.CodeFont == "" {
		return fmt.Errorf("%w: code font", ErrInvalidFont)
	}
	if s.BodySize < MinBodySize || s.BodySize > MaxBodySize {
		return fmt.Errorf("%w: %.1f (must be between %.1f and %.1f)", ErrInvalidSize, s.BodySize, MinBodySize, MaxBodySize)
	}
	if !isHexColor(s.DarkColor) {
		return fmt.Errorf("%w: dark color %q", ErrInvalidColor, s.DarkColor)
	}
	if !isHexColor(s.AccentColor) {
		return fmt.Errorf("%w: accent color %q", ErrInvalidColor, s.AccentColor)
	}
	if s.PageContentWidth < MinContentWidth || s.PageContentWidth > MaxContentWidth {
		return fmt.Errorf("%w: %d twips", ErrInvalidWidth, s.PageContentWidth)
	}
	if s.PageWidth <= s.PageContentWidth || s.PageHeight <= 0 {
		return fmt.Errorf("%w: page %dx%d twips", ErrInvalidWidth, s.PageWidth, s.PageHeight)
	}
	for _, m := range []int{s.Margins.Top, s.Margins.Bottom, s.Margins.Left, s.Margins.Right} {
		if m < MinPageMargin || m > MaxPageMargin {
			return fmt.Errorf("%w: %d twips (must be between %d and %d)", ErrInvalidMargin, m, MinPageMargin, MaxPageMargin)
		}
	}
	return nil
}

// isHexColor checks a 6-digit RRGGBB value without a leading '#'.
func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
