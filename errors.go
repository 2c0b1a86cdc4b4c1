package bookdocx

import (
	"errors"
	"fmt"
)

// Sentinel errors for node construction and assembly invariants.
var (
	ErrEmptyManifest    = errors.New("manifest cannot be empty")
	ErrNilBuilder       = errors.New("chapter builder cannot be nil")
	ErrEmptyChapterName = errors.New("chapter name cannot be empty")
	ErrNilNode          = errors.New("nil node in sequence")

	ErrHeadingLevel    = errors.New("heading level out of range")
	ErrEmptyHeading    = errors.New("heading text cannot be empty")
	ErrPartOrdinal     = errors.New("part ordinal must be positive")
	ErrEmptyPartTitle  = errors.New("part title cannot be empty")
	ErrEmptyParagraph  = errors.New("paragraph must contain at least one run")
	ErrEmptyLabel      = errors.New("labeled block label cannot be empty")
	ErrEmptyBody       = errors.New("labeled block body cannot be empty")
	ErrEmptyTable      = errors.New("table must have at least one header column")
	ErrColumnMismatch  = errors.New("column width count does not match header columns")
	ErrRowArity        = errors.New("table row cell count does not match header")
	ErrColumnWidth     = errors.New("column width must be positive")
	ErrSpacerHeight    = errors.New("spacer height cannot be negative")
	ErrEmptyCode       = errors.New("code block must have at least one line")
	ErrTableWidth      = errors.New("table columns exceed page content width")
	ErrDuplicatePart   = errors.New("duplicate part ordinal")
	ErrUnsupportedNode = errors.New("unsupported node kind")
)

// Style validation errors.
var (
	ErrInvalidFont   = errors.New("font family cannot be empty")
	ErrInvalidSize   = errors.New("invalid font size")
	ErrInvalidColor  = errors.New("invalid hex color")
	ErrInvalidWidth  = errors.New("invalid page content width")
	ErrInvalidMargin = errors.New("invalid margin")
)

// Input validation errors.
var (
	ErrEmptyCoverTitle = errors.New("cover title cannot be empty")
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")
)

// AuthoringError reports a node that failed construction-time validation.
// Constructors panic with an *AuthoringError (invalid static content is a
// programmer error, similar to time.NewTicker with a non-positive duration);
// Assemble recovers the panic and attributes it to the owning chapter.
type AuthoringError struct {
	NodeKind NodeKind
	Chapter  string // empty until assembly attributes it
	Err      error
}

func (e *AuthoringError) Error() string {
	if e.Chapter != "" {
		return fmt.Sprintf("authoring %s in chapter %q: %v", e.NodeKind, e.Chapter, e.Err)
	}
	return fmt.Sprintf("authoring %s: %v", e.NodeKind, e.Err)
}

func (e *AuthoringError) Unwrap() error { return e.Err }

// AssemblyError reports a chapter whose builder failed or whose output
// violates a cross-chapter invariant. Index is the chapter's position in
// the manifest.
type AssemblyError struct {
	Index   int
	Chapter string
	Err     error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("assembling chapter %d (%q): %v", e.Index, e.Chapter, e.Err)
}

func (e *AssemblyError) Unwrap() error { return e.Err }

// SerializationError reports a structurally valid node the renderer could
// not emit. Index is the node's position in the assembled stream.
type SerializationError struct {
	Index    int
	NodeKind NodeKind
	Err      error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serializing node %d (%s): %v", e.Index, e.NodeKind, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// failAuthoring panics with an *AuthoringError; recovered by Assemble.
func failAuthoring(kind NodeKind, err error) {
	panic(&AuthoringError{NodeKind: kind, Err: err})
}
