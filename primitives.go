package bookdocx

import (
	"fmt"
	"strings"
)

// Heading bounds and spacing defaults (twips).
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 4

	DefaultSpacerHeight = 240 // 12pt
	partRuleSpacing     = 480 // 24pt below a part heading
	codeBlockSpacing    = 120 // 6pt around a code block
)

// All constructors validate their input and panic with an *AuthoringError
// on violation. Chapter content is static, so an invalid node is a
// programmer error; Assemble recovers the panic and reports the offending
// chapter and manifest index.

// NewHeading creates a numbered section heading. Level 1 is a chapter
// heading; levels 2 through 4 are nested sections.
func NewHeading(level int, text string) Heading {
	if level < MinHeadingLevel || level > MaxHeadingLevel {
		failAuthoring(KindHeading, fmt.Errorf("%w: %d (must be between %d and %d)", ErrHeadingLevel, level, MinHeadingLevel, MaxHeadingLevel))
	}
	if strings.TrimSpace(text) == "" {
		failAuthoring(KindHeading, ErrEmptyHeading)
	}
	return Heading{Level: level, Text: text}
}

// NewPartHeading opens a new top-level part. It returns a sequence: the
// part heading itself followed by the rule spacing that separates it from
// the part's first chapter. The ordinal is explicit and 1-based; the
// assembler rejects duplicates across chapters.
func NewPartHeading(ordinal int, title string) Sequence {
	if ordinal < 1 {
		failAuthoring(KindPartHeading, fmt.Errorf("%w: %d", ErrPartOrdinal, ordinal))
	}
	if strings.TrimSpace(title) == "" {
		failAuthoring(KindPartHeading, ErrEmptyPartTitle)
	}
	return Sequence{
		PartHeading{Ordinal: ordinal, Text: title},
		Spacer{Height: partRuleSpacing},
	}
}

// P creates a paragraph from one or more styled runs.
func P(runs ...Run) Paragraph {
	if len(runs) == 0 {
		failAuthoring(KindParagraph, ErrEmptyParagraph)
	}
	return Paragraph{Runs: runs}
}

// Text creates an unstyled run rendered with the style defaults.
func Text(s string) Run { return Run{Text: s} }

// Bold creates a bold run.
func Bold(s string) Run { return Run{Text: s, Bold: true} }

// Italic creates an italic run.
func Italic(s string) Run { return Run{Text: s, Italic: true} }

// NewTable creates a table with explicit column widths in twips. The width
// count must match the header, every row must have the same cell count as
// the header, and each width must be positive. Whether the widths fit the
// page is checked at assembly, where the page geometry is known.
func NewTable(header []string, rows [][]string, colWidths []int) Table {
	if len(header) == 0 {
		failAuthoring(KindTable, ErrEmptyTable)
	}
	if len(colWidths) != len(header) {
		failAuthoring(KindTable, fmt.Errorf("%w: %d widths for %d columns", ErrColumnMismatch, len(colWidths), len(header)))
	}
	for i, w := range colWidths {
		if w <= 0 {
			failAuthoring(KindTable, fmt.Errorf("%w: column %d has width %d", ErrColumnWidth, i, w))
		}
	}
	for i, row := range rows {
		if len(row) != len(header) {
			failAuthoring(KindTable, fmt.Errorf("%w: row %d has %d cells for %d columns", ErrRowArity, i, len(row), len(header)))
		}
	}
	return Table{Header: header, Rows: rows, ColWidths: colWidths}
}

// Code creates a code block from source text, one rendered line per source
// line. It returns a sequence: breathing room above, the block, breathing
// room below. Trailing newlines are trimmed; interior blank lines are kept.
func Code(language, source string) Sequence {
	lines := strings.Split(strings.TrimRight(source, "\n"), "\n")
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		failAuthoring(KindCodeBlock, ErrEmptyCode)
	}
	return Sequence{
		Spacer{Height: codeBlockSpacing},
		CodeBlock{Language: language, Lines: lines},
		Spacer{Height: codeBlockSpacing},
	}
}

// Definition creates a definition block with a bold accent label.
func Definition(label, body string) LabeledBlock {
	return newLabeledBlock(BlockDefinition, label, body)
}

// Theorem creates a theorem block with a bold accent label.
func Theorem(label, body string) LabeledBlock {
	return newLabeledBlock(BlockTheorem, label, body)
}

func newLabeledBlock(kind BlockKind, label, body string) LabeledBlock {
	if strings.TrimSpace(label) == "" {
		failAuthoring(KindLabeledBlock, ErrEmptyLabel)
	}
	if strings.TrimSpace(body) == "" {
		failAuthoring(KindLabeledBlock, ErrEmptyBody)
	}
	return LabeledBlock{BlockKind: kind, Label: label, Body: body}
}

// NewSpacer creates vertical whitespace. A height of 0 takes the standard
// height; negative heights are rejected.
func NewSpacer(height int) Spacer {
	if height < 0 {
		failAuthoring(KindSpacer, fmt.Errorf("%w: %d", ErrSpacerHeight, height))
	}
	if height == 0 {
		height = DefaultSpacerHeight
	}
	return Spacer{Height: height}
}

// Break forces a page break.
func Break() PageBreak { return PageBreak{} }
