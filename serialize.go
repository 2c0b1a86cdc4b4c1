package bookdocx

import (
	"fmt"
	"strings"

	"github.com/alnah/go-bookdocx/internal/docx"
)

// tocEntry records one numbered heading for the front-matter contents list.
type tocEntry struct {
	level  int // 0 = part
	number string
	text   string
}

// Serialize walks the assembled stream once and emits the binary container
// using the default syntax theme. Node order maps 1:1 onto structural order
// in the output.
func Serialize(nodes []Node, style StyleConstants) ([]byte, error) {
	return serialize(nodes, style, DefaultSyntaxTheme, nil, nil)
}

// serialize renders the stream. Heading and part numbering is computed in
// this one left-to-right pass; the collected entries feed the optional
// front matter, which is emitted before the body blocks.
func serialize(nodes []Node, style StyleConstants, theme string, cover *Cover, toc *TOC) ([]byte, error) {
	s := &serializer{style: style, theme: theme}

	for i, n := range nodes {
		if err := s.render(i, n); err != nil {
			return nil, err
		}
	}

	builder := docx.NewBuilder(docx.Layout{
		PageWidth:    style.PageWidth,
		PageHeight:   style.PageHeight,
		Margins:      docx.Margins(style.Margins),
		BodyFont:     style.BodyFont,
		CodeFont:     style.CodeFont,
		BodySizeHalf: int(style.BodySize * 2),
		DarkColor:    style.DarkColor,
		AccentColor:  style.AccentColor,
	})

	if cover != nil {
		emitCover(builder, cover)
	}
	if toc != nil {
		emitTOC(builder, toc, s.entries)
	}
	for _, op := range s.ops {
		op(builder)
	}

	data, err := builder.Bytes()
	if err != nil {
		return nil, fmt.Errorf("rendering container: %w", err)
	}
	return data, nil
}

// serializer accumulates render operations and numbering state during the
// single pass over the node stream.
type serializer struct {
	style    StyleConstants
	theme    string
	counters [MaxHeadingLevel]int
	entries  []tocEntry
	ops      []func(*docx.Builder)
}

var headingStyles = [MaxHeadingLevel]string{
	docx.StyleHeading1, docx.StyleHeading2, docx.StyleHeading3, docx.StyleHeading4,
}

func (s *serializer) render(index int, n Node) error {
	switch node := n.(type) {
	case Heading:
		number := s.headingNumber(node.Level)
		text := number + " " + node.Text
		s.entries = append(s.entries, tocEntry{level: node.Level, number: number, text: node.Text})
		s.paragraph(docx.Paragraph{
			Style: headingStyles[node.Level-1],
			Runs:  []docx.Run{{Text: text}},
		})

	case PartHeading:
		text := fmt.Sprintf("Part %s — %s", roman(node.Ordinal), node.Text)
		s.entries = append(s.entries, tocEntry{level: 0, text: text})
		s.paragraph(docx.Paragraph{
			Style: docx.StylePart,
			Runs:  []docx.Run{{Text: text}},
		})

	case Paragraph:
		runs, err := s.mapRuns(index, node.Runs)
		if err != nil {
			return err
		}
		s.paragraph(docx.Paragraph{Runs: runs})

	case Table:
		s.ops = append(s.ops, func(b *docx.Builder) {
			b.AddTable(docx.Table{
				ColWidths: node.ColWidths,
				Header:    node.Header,
				Rows:      node.Rows,
			})
		})

	case CodeBlock:
		for _, lineRuns := range highlightCode(node.Language, node.Lines, s.theme) {
			runs, err := s.mapRuns(index, lineRuns)
			if err != nil {
				return err
			}
			s.paragraph(docx.Paragraph{Style: docx.StyleCode, ExactSpacing: true, Runs: runs})
		}

	case LabeledBlock:
		label := fmt.Sprintf("%s (%s).", node.BlockKind, node.Label)
		s.paragraph(docx.Paragraph{Runs: []docx.Run{
			{Text: label, Bold: true, Color: s.style.AccentColor},
			{Text: " " + node.Body},
		}})

	case Spacer:
		s.paragraph(docx.Paragraph{SpacingAfter: node.Height, ExactSpacing: true})

	case PageBreak:
		s.ops = append(s.ops, func(b *docx.Builder) { b.AddPageBreak() })

	default:
		return &SerializationError{Index: index, NodeKind: n.Kind(), Err: ErrUnsupportedNode}
	}
	return nil
}

func (s *serializer) paragraph(p docx.Paragraph) {
	s.ops = append(s.ops, func(b *docx.Builder) { b.AddParagraph(p) })
}

// headingNumber advances the level counters and formats the dotted number,
// e.g. level 2 after two chapters and one section -> "2.2".
func (s *serializer) headingNumber(level int) string {
	s.counters[level-1]++
	for i := level; i < MaxHeadingLevel; i++ {
		s.counters[i] = 0
	}
	parts := make([]string, level)
	for i := 0; i < level; i++ {
		parts[i] = fmt.Sprintf("%d", s.counters[i])
	}
	return strings.Join(parts, ".")
}

// mapRuns converts styled runs, resolving the FontCode alias and rejecting
// malformed explicit colors. Style defaults stay unset; the container's
// document defaults supply them, so explicit overrides always win.
func (s *serializer) mapRuns(index int, runs []Run) ([]docx.Run, error) {
	out := make([]docx.Run, 0, len(runs))
	for _, r := range runs {
		if r.Color != "" && !isHexColor(r.Color) {
			return nil, &SerializationError{
				Index:    index,
				NodeKind: KindParagraph,
				Err:      fmt.Errorf("%w: run color %q", ErrInvalidColor, r.Color),
			}
		}
		font := r.Font
		if font == FontCode {
			font = s.style.CodeFont
		}
		out = append(out, docx.Run{
			Text:     r.Text,
			Bold:     r.Bold,
			Italic:   r.Italic,
			Color:    r.Color,
			SizeHalf: int(r.Size * 2),
			Font:     font,
		})
	}
	return out, nil
}

// emitCover writes the cover page followed by a page break.
func emitCover(b *docx.Builder, cover *Cover) {
	add := func(style, text string) {
		if text == "" {
			return
		}
		b.AddParagraph(docx.Paragraph{Style: style, Runs: []docx.Run{{Text: text}}})
	}
	add(docx.StyleTitle, cover.Title)
	add(docx.StyleSubtitle, cover.Subtitle)
	add(docx.StyleSubtitle, cover.Author)
	line := cover.Date
	if cover.Version != "" {
		if line != "" {
			line += " · "
		}
		line += cover.Version
	}
	add(docx.StyleSubtitle, line)
	b.AddPageBreak()
}

// emitTOC writes the contents list from the numbering pass, then a page
// break. Entries deeper than the configured depth are skipped.
func emitTOC(b *docx.Builder, toc *TOC, entries []tocEntry) {
	title := toc.Title
	if title == "" {
		title = "Contents"
	}
	b.AddParagraph(docx.Paragraph{Style: docx.StyleHeading1, Runs: []docx.Run{{Text: title}}})

	for _, e := range entries {
		if e.level == 0 {
			b.AddParagraph(docx.Paragraph{Style: docx.StyleTOC, Runs: []docx.Run{{Text: e.text, Bold: true}}})
			continue
		}
		if e.level > toc.depth() {
			continue
		}
		indent := strings.Repeat("    ", e.level-1)
		b.AddParagraph(docx.Paragraph{
			Style: docx.StyleTOC,
			Runs:  []docx.Run{{Text: indent + e.number + " " + e.text}},
		})
	}
	b.AddPageBreak()
}

// roman formats a 1-based ordinal as an uppercase roman numeral.
func roman(n int) string {
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	var sb strings.Builder
	for i, v := range values {
		for n >= v {
			sb.WriteString(symbols[i])
			n -= v
		}
	}
	return sb.String()
}
