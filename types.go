package bookdocx

import "fmt"

// Input contains generation parameters for one run.
type Input struct {
	Manifest Manifest // ordered chapter registry (required)
	Cover    *Cover   // cover page (optional, nil = none)
	TOC      *TOC     // table of contents (optional, nil = none)
}

// Cover configures the cover page.
type Cover struct {
	Title    string
	Subtitle string
	Author   string
	Date     string // free-form, e.g. "2026-08-29"
	Version  string
}

// Validate checks cover settings. Returns nil if c is nil (nil means no cover).
func (c *Cover) Validate() error {
	if c == nil {
		return nil
	}
	if c.Title == "" {
		return ErrEmptyCoverTitle
	}
	return nil
}

// TOC depth bounds; depth is the deepest heading level listed.
const (
	MinTOCDepth     = 1
	MaxTOCDepth     = MaxHeadingLevel
	DefaultTOCDepth = 2
)

// TOC configures the static table of contents.
type TOC struct {
	Title    string // empty = "Contents"
	MaxLevel int    // 0 = DefaultTOCDepth
}

// Validate checks TOC settings. Returns nil if t is nil (nil means no TOC).
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}
	if t.MaxLevel == 0 {
		return nil
	}
	if t.MaxLevel < MinTOCDepth || t.MaxLevel > MaxTOCDepth {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidTOCDepth, t.MaxLevel, MinTOCDepth, MaxTOCDepth)
	}
	return nil
}

// depth resolves the configured depth, applying the default.
func (t *TOC) depth() int {
	if t.MaxLevel == 0 {
		return DefaultTOCDepth
	}
	return t.MaxLevel
}

// Result contains the generated artifact.
type Result struct {
	DOCX  []byte // the serialized container
	Nodes int    // assembled node count, before front matter
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	style StyleConstants
	theme string
}

// WithStyle replaces the default style constants. The value is copied;
// later changes to the caller's copy have no effect.
func WithStyle(style StyleConstants) Option {
	return func(s *Service) {
		s.cfg.style = style
	}
}

// WithSyntaxTheme selects the chroma style used for code blocks.
// Panics on an empty name (programmer error, similar to time.NewTicker).
func WithSyntaxTheme(name string) Option {
	if name == "" {
		panic("bookdocx: WithSyntaxTheme name must not be empty")
	}
	return func(s *Service) {
		s.cfg.theme = name
	}
}
