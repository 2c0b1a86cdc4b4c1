package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Static container parts. The part set is fixed, so the content types and
// relationships never vary.
const (
	contentTypesXML = xmlDeclaration + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

	rootRelsXML = xmlDeclaration + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	documentRelsXML = xmlDeclaration + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`
)

// documentXML wraps the rendered body blocks in the document part, closing
// with the section properties that set page size and margins.
func documentXML(body string, l Layout) string {
	return fmt.Sprintf(
		xmlDeclaration+`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>%s<w:sectPr><w:pgSz w:w="%d" w:h="%d"/><w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr></w:body></w:document>`,
		body,
		l.PageWidth, l.PageHeight,
		l.Margins.Top, l.Margins.Right, l.Margins.Bottom, l.Margins.Left,
	)
}

// stylesTemplate declares the named paragraph styles the serializer targets.
// Placeholders are replaced with layout-derived values; see stylesXML.
const stylesTemplate = xmlDeclaration + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="{bodyFont}" w:hAnsi="{bodyFont}"/><w:color w:val="{darkColor}"/><w:sz w:val="{bodySize}"/><w:szCs w:val="{bodySize}"/></w:rPr></w:rPrDefault><w:pPrDefault><w:pPr><w:spacing w:before="0" w:after="160"/></w:pPr></w:pPrDefault></w:docDefaults><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style><w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:pPr><w:jc w:val="center"/><w:spacing w:before="2880" w:after="240"/></w:pPr><w:rPr><w:b/><w:color w:val="{darkColor}"/><w:sz w:val="{titleSize}"/><w:szCs w:val="{titleSize}"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Subtitle"><w:name w:val="Subtitle"/><w:basedOn w:val="Normal"/><w:pPr><w:jc w:val="center"/><w:spacing w:before="0" w:after="160"/></w:pPr><w:rPr><w:color w:val="{accentColor}"/><w:sz w:val="{subtitleSize}"/><w:szCs w:val="{subtitleSize}"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="PartTitle"><w:name w:val="Part Title"/><w:basedOn w:val="Normal"/><w:pPr><w:jc w:val="center"/><w:spacing w:before="3600" w:after="240"/></w:pPr><w:rPr><w:b/><w:color w:val="{accentColor}"/><w:sz w:val="{partSize}"/><w:szCs w:val="{partSize}"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="360" w:after="200"/></w:pPr><w:rPr><w:b/><w:color w:val="{darkColor}"/><w:sz w:val="{h1Size}"/><w:szCs w:val="{h1Size}"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="280" w:after="160"/></w:pPr><w:rPr><w:b/><w:color w:val="{darkColor}"/><w:sz w:val="{h2Size}"/><w:szCs w:val="{h2Size}"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr><w:rPr><w:b/><w:color w:val="{accentColor}"/><w:sz w:val="{h3Size}"/><w:szCs w:val="{h3Size}"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading4"><w:name w:val="heading 4"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="200" w:after="120"/></w:pPr><w:rPr><w:b/><w:i/><w:color w:val="{darkColor}"/><w:sz w:val="{h4Size}"/><w:szCs w:val="{h4Size}"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="CodeLine"><w:name w:val="Code Line"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="0" w:after="0"/></w:pPr><w:rPr><w:rFonts w:ascii="{codeFont}" w:hAnsi="{codeFont}"/><w:sz w:val="{codeSize}"/><w:szCs w:val="{codeSize}"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="TOCEntry"><w:name w:val="TOC Entry"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="0" w:after="60"/></w:pPr></w:style></w:styles>`

// stylesXML fills the styles part with layout-derived fonts, sizes, and
// colors. Sizes are half-points scaled from the body size.
func stylesXML(l Layout) string {
	half := func(n int) string { return strconv.Itoa(n) }
	body := l.BodySizeHalf

	return strings.NewReplacer(
		"{bodyFont}", escapeXML(l.BodyFont),
		"{codeFont}", escapeXML(l.CodeFont),
		"{darkColor}", l.DarkColor,
		"{accentColor}", l.AccentColor,
		"{bodySize}", half(body),
		"{titleSize}", half(body*3),
		"{subtitleSize}", half(body+6),
		"{partSize}", half(body*5/2),
		"{h1Size}", half(body+14),
		"{h2Size}", half(body+8),
		"{h3Size}", half(body+4),
		"{h4Size}", half(body+2),
		"{codeSize}", half(body-2),
	).Replace(stylesTemplate)
}

// escapeXML escapes a value for inclusion in an XML attribute or text node.
func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// writeContainer zips the five fixed parts in a stable order with zero
// timestamps, so identical input yields byte-identical output.
func writeContainer(document, styles string) ([]byte, error) {
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/document.xml", document},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", styles},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("creating part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("writing part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing container: %w", err)
	}
	return buf.Bytes(), nil
}
