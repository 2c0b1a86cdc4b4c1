package bookdocx

// NodeKind enumerates the content node variants.
type NodeKind int

const (
	KindHeading NodeKind = iota
	KindPartHeading
	KindParagraph
	KindTable
	KindCodeBlock
	KindLabeledBlock
	KindSpacer
	KindPageBreak
)

func (k NodeKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindPartHeading:
		return "part heading"
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindCodeBlock:
		return "code block"
	case KindLabeledBlock:
		return "labeled block"
	case KindSpacer:
		return "spacer"
	case KindPageBreak:
		return "page break"
	default:
		return "unknown"
	}
}

// Node is one element of the document stream. Nodes are immutable values
// created by the constructors in this package and consumed exactly once by
// Assemble and the serializer.
type Node interface {
	Kind() NodeKind
	node() // marker method restricting implementations to this package
}

// Part is either a single Node or a Sequence. It is the building block
// accepted by Seq, which splices nested sequences one level deep.
type Part interface {
	nodes() []Node
}

// Sequence is an ordered run of nodes. Constructors that produce multiple
// structural units (code blocks, part headings) return a Sequence; Seq
// splices it into the surrounding stream.
type Sequence []Node

func (s Sequence) nodes() []Node { return s }

// Seq builds an ordered node sequence from single nodes and nested
// sequences, flattening one level. No node is duplicated or dropped.
func Seq(parts ...Part) Sequence {
	var out Sequence
	for _, p := range parts {
		if p == nil {
			continue
		}
		out = append(out, p.nodes()...)
	}
	return out
}

// Run is a span of text with uniform styling inside a paragraph. Zero-value
// fields fall back to StyleConstants defaults at serialization time;
// explicit values always win.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Color  string  // RRGGBB, empty = style dark color
	Size   float64 // points, 0 = style body size
	Font   string  // empty = style body font
}

// Heading is a numbered section heading, level 1 (chapter) through 4.
type Heading struct {
	Level int
	Text  string
}

// PartHeading opens a top-level part of the document. The ordinal is
// explicit so duplicate part numbers are detectable at assembly.
type PartHeading struct {
	Ordinal int
	Text    string
}

// Paragraph is an ordered run of styled text spans.
type Paragraph struct {
	Runs []Run
}

// Table has a header row, body rows, and explicit column widths in twips.
// Widths are honored verbatim; they must fit the page content width.
type Table struct {
	Header    []string
	Rows      [][]string
	ColWidths []int
}

// CodeBlock is a block of source lines rendered in the code font, one
// paragraph per line, syntax-highlighted when the language is known.
type CodeBlock struct {
	Language string
	Lines    []string
}

// BlockKind selects the flavor of a LabeledBlock.
type BlockKind int

const (
	BlockDefinition BlockKind = iota
	BlockTheorem
)

func (b BlockKind) String() string {
	switch b {
	case BlockDefinition:
		return "Definition"
	case BlockTheorem:
		return "Theorem"
	default:
		return "Block"
	}
}

// LabeledBlock is a definition or theorem: a bold label followed by body text.
type LabeledBlock struct {
	BlockKind BlockKind
	Label     string
	Body      string
}

// Spacer is vertical whitespace of a fixed height in twips.
type Spacer struct {
	Height int
}

// PageBreak forces the following content onto a new page.
type PageBreak struct{}

func (Heading) Kind() NodeKind      { return KindHeading }
func (PartHeading) Kind() NodeKind  { return KindPartHeading }
func (Paragraph) Kind() NodeKind    { return KindParagraph }
func (Table) Kind() NodeKind        { return KindTable }
func (CodeBlock) Kind() NodeKind    { return KindCodeBlock }
func (LabeledBlock) Kind() NodeKind { return KindLabeledBlock }
func (Spacer) Kind() NodeKind       { return KindSpacer }
func (PageBreak) Kind() NodeKind    { return KindPageBreak }

func (Heading) node()      {}
func (PartHeading) node()  {}
func (Paragraph) node()    {}
func (Table) node()        {}
func (CodeBlock) node()    {}
func (LabeledBlock) node() {}
func (Spacer) node()       {}
func (PageBreak) node()    {}

func (h Heading) nodes() []Node      { return []Node{h} }
func (h PartHeading) nodes() []Node  { return []Node{h} }
func (p Paragraph) nodes() []Node    { return []Node{p} }
func (t Table) nodes() []Node        { return []Node{t} }
func (c CodeBlock) nodes() []Node    { return []Node{c} }
func (l LabeledBlock) nodes() []Node { return []Node{l} }
func (s Spacer) nodes() []Node       { return []Node{s} }
func (p PageBreak) nodes() []Node    { return []Node{p} }
