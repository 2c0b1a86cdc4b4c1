// Package docx writes WordprocessingML documents: a ZIP container holding
// the XML parts Word expects. It is a minimal, append-only writer; callers
// feed it paragraphs and tables in order and receive the container bytes.
// Output is deterministic: fixed part order, zero timestamps, stable XML.
package docx

import "fmt"

// Margins holds page margins in twips.
type Margins struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Layout carries page geometry and the document-wide style defaults baked
// into the styles part.
type Layout struct {
	PageWidth    int // twips
	PageHeight   int // twips
	Margins      Margins
	BodyFont     string
	CodeFont     string
	BodySizeHalf int    // half-points
	DarkColor    string // RRGGBB
	AccentColor  string // RRGGBB
}

// Run is a text span with uniform formatting. Zero-value fields inherit
// from the paragraph style; explicit values override it.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Color     string // RRGGBB
	SizeHalf  int    // half-points
	Font      string
	PageBreak bool // render a forced page break instead of text
}

// Paragraph is a styled block of runs. Style names a paragraph style
// declared in the styles part; empty means the document default.
type Paragraph struct {
	Style         string
	SpacingBefore int // twips, 0 = style default
	SpacingAfter  int // twips, 0 = style default
	ExactSpacing  bool // emit spacing even when zero
	Runs          []Run
}

// Table is a fixed-layout table. Column widths are twips and emitted
// verbatim as the table grid. The header row is shaded and bold.
type Table struct {
	ColWidths []int
	Header    []string
	Rows      [][]string
}

// Paragraph style identifiers declared in the styles part.
const (
	StyleTitle    = "Title"
	StyleSubtitle = "Subtitle"
	StylePart     = "PartTitle"
	StyleHeading1 = "Heading1"
	StyleHeading2 = "Heading2"
	StyleHeading3 = "Heading3"
	StyleHeading4 = "Heading4"
	StyleCode     = "CodeLine"
	StyleTOC      = "TOCEntry"
)

// Builder accumulates document content and produces the container bytes.
type Builder struct {
	layout Layout
	blocks []block
}

type block struct {
	para  *Paragraph
	table *Table
}

// NewBuilder creates a Builder for one document.
func NewBuilder(layout Layout) *Builder {
	return &Builder{layout: layout}
}

// AddParagraph appends a paragraph to the document body.
func (b *Builder) AddParagraph(p Paragraph) {
	b.blocks = append(b.blocks, block{para: &p})
}

// AddTable appends a table to the document body.
func (b *Builder) AddTable(t Table) {
	b.blocks = append(b.blocks, block{table: &t})
}

// AddPageBreak appends a paragraph holding a single forced page break.
// Layout reflow never elides it.
func (b *Builder) AddPageBreak() {
	b.AddParagraph(Paragraph{ExactSpacing: true, Runs: []Run{{PageBreak: true}}})
}

// Blocks reports how many body blocks have been added.
func (b *Builder) Blocks() int { return len(b.blocks) }

// Bytes serializes the accumulated document into a ZIP container.
func (b *Builder) Bytes() ([]byte, error) {
	body, err := b.bodyXML()
	if err != nil {
		return nil, fmt.Errorf("rendering document body: %w", err)
	}
	return writeContainer(documentXML(body, b.layout), stylesXML(b.layout))
}
