package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Marshal-only structs for the WordprocessingML body. Tags carry the "w:"
// prefix literally; the namespace is declared once on the root element.

type paraXML struct {
	XMLName xml.Name      `xml:"w:p"`
	Props   *paraPropsXML `xml:"w:pPr,omitempty"`
	Runs    []runXML      `xml:"w:r"`
}

type paraPropsXML struct {
	Style   *valXML     `xml:"w:pStyle,omitempty"`
	Spacing *spacingXML `xml:"w:spacing,omitempty"`
}

type valXML struct {
	Val string `xml:"w:val,attr"`
}

type spacingXML struct {
	Before int `xml:"w:before,attr"`
	After  int `xml:"w:after,attr"`
}

type runXML struct {
	Props *runPropsXML `xml:"w:rPr,omitempty"`
	Break *breakXML    `xml:"w:br,omitempty"`
	Text  *textXML     `xml:"w:t,omitempty"`
}

type runPropsXML struct {
	Fonts  *fontsXML `xml:"w:rFonts,omitempty"`
	Bold   *emptyXML `xml:"w:b,omitempty"`
	Italic *emptyXML `xml:"w:i,omitempty"`
	Color  *valXML   `xml:"w:color,omitempty"`
	Size   *valXML   `xml:"w:sz,omitempty"`
	SizeCs *valXML   `xml:"w:szCs,omitempty"`
}

type fontsXML struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
}

type emptyXML struct{}

type breakXML struct {
	Type string `xml:"w:type,attr"`
}

type textXML struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type tableXML struct {
	XMLName xml.Name    `xml:"w:tbl"`
	Props   tblPropsXML `xml:"w:tblPr"`
	Grid    tblGridXML  `xml:"w:tblGrid"`
	Rows    []rowXML    `xml:"w:tr"`
}

type tblPropsXML struct {
	Width   widthXML      `xml:"w:tblW"`
	Borders tblBordersXML `xml:"w:tblBorders"`
	Layout  tblLayoutXML  `xml:"w:tblLayout"`
}

type widthXML struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type tblLayoutXML struct {
	Type string `xml:"w:type,attr"`
}

type borderXML struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type tblBordersXML struct {
	Top     borderXML `xml:"w:top"`
	Left    borderXML `xml:"w:left"`
	Bottom  borderXML `xml:"w:bottom"`
	Right   borderXML `xml:"w:right"`
	InsideH borderXML `xml:"w:insideH"`
	InsideV borderXML `xml:"w:insideV"`
}

type tblGridXML struct {
	Cols []gridColXML `xml:"w:gridCol"`
}

type gridColXML struct {
	W int `xml:"w:w,attr"`
}

type rowXML struct {
	Cells []cellXML `xml:"w:tc"`
}

type cellXML struct {
	Props cellPropsXML `xml:"w:tcPr"`
	Paras []paraXML    `xml:"w:p"`
}

type cellPropsXML struct {
	Width   widthXML `xml:"w:tcW"`
	Shading *shadeXML `xml:"w:shd,omitempty"`
}

type shadeXML struct {
	Val  string `xml:"w:val,attr"`
	Fill string `xml:"w:fill,attr"`
}

// bodyXML marshals the accumulated blocks in order.
func (b *Builder) bodyXML() (string, error) {
	var buf bytes.Buffer
	for i, blk := range b.blocks {
		var v any
		switch {
		case blk.para != nil:
			v = toParaXML(*blk.para)
		case blk.table != nil:
			v = b.toTableXML(*blk.table)
		default:
			return "", fmt.Errorf("block %d is empty", i)
		}
		data, err := xml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("block %d: %w", i, err)
		}
		buf.Write(data)
	}
	return buf.String(), nil
}

func toParaXML(p Paragraph) paraXML {
	out := paraXML{}

	props := &paraPropsXML{}
	hasProps := false
	if p.Style != "" {
		props.Style = &valXML{Val: p.Style}
		hasProps = true
	}
	if p.SpacingBefore != 0 || p.SpacingAfter != 0 || p.ExactSpacing {
		props.Spacing = &spacingXML{Before: p.SpacingBefore, After: p.SpacingAfter}
		hasProps = true
	}
	if hasProps {
		out.Props = props
	}

	for _, r := range p.Runs {
		out.Runs = append(out.Runs, toRunXML(r))
	}
	return out
}

func toRunXML(r Run) runXML {
	out := runXML{}

	props := &runPropsXML{}
	hasProps := false
	if r.Font != "" {
		props.Fonts = &fontsXML{ASCII: r.Font, HAnsi: r.Font}
		hasProps = true
	}
	if r.Bold {
		props.Bold = &emptyXML{}
		hasProps = true
	}
	if r.Italic {
		props.Italic = &emptyXML{}
		hasProps = true
	}
	if r.Color != "" {
		props.Color = &valXML{Val: r.Color}
		hasProps = true
	}
	if r.SizeHalf > 0 {
		size := fmt.Sprintf("%d", r.SizeHalf)
		props.Size = &valXML{Val: size}
		props.SizeCs = &valXML{Val: size}
		hasProps = true
	}
	if hasProps {
		out.Props = props
	}

	if r.PageBreak {
		out.Break = &breakXML{Type: "page"}
		return out
	}
	out.Text = &textXML{Space: "preserve", Value: r.Text}
	return out
}

func (b *Builder) toTableXML(t Table) tableXML {
	total := 0
	for _, w := range t.ColWidths {
		total += w
	}

	border := func() borderXML {
		return borderXML{Val: "single", Size: 4, Space: 0, Color: b.layout.DarkColor}
	}

	out := tableXML{
		Props: tblPropsXML{
			Width: widthXML{W: total, Type: "dxa"},
			Borders: tblBordersXML{
				Top: border(), Left: border(), Bottom: border(),
				Right: border(), InsideH: border(), InsideV: border(),
			},
			Layout: tblLayoutXML{Type: "fixed"},
		},
	}
	for _, w := range t.ColWidths {
		out.Grid.Cols = append(out.Grid.Cols, gridColXML{W: w})
	}

	out.Rows = append(out.Rows, b.toRowXML(t.Header, t.ColWidths, true))
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, b.toRowXML(row, t.ColWidths, false))
	}
	return out
}

func (b *Builder) toRowXML(cells []string, widths []int, header bool) rowXML {
	row := rowXML{}
	for i, text := range cells {
		run := Run{Text: text}
		cell := cellXML{
			Props: cellPropsXML{Width: widthXML{W: widths[i], Type: "dxa"}},
		}
		if header {
			run.Bold = true
			run.Color = "FFFFFF"
			cell.Props.Shading = &shadeXML{Val: "clear", Fill: b.layout.AccentColor}
		}
		cell.Paras = []paraXML{toParaXML(Paragraph{ExactSpacing: true, Runs: []Run{run}})}
		row.Cells = append(row.Cells, cell)
	}
	return row
}
