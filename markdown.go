package bookdocx

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FontCode is a font alias on Run. The serializer resolves it to
// StyleConstants.CodeFont, so inline code keeps working when the code font
// is reconfigured.
const FontCode = "code"

// inlineMarkdown parses CommonMark; only inline nodes are consumed here.
var inlineMarkdown = goldmark.New()

// Markdown parses inline CommonMark markup into a styled paragraph.
// Supported: **bold**, *italic*, and `code` spans. Block structure is
// ignored; lines are joined with spaces. Empty input is an authoring error.
func Markdown(source string) Paragraph {
	if strings.TrimSpace(source) == "" {
		failAuthoring(KindParagraph, ErrEmptyParagraph)
	}

	src := []byte(source)
	root := inlineMarkdown.Parser().Parse(text.NewReader(src))

	var runs []Run
	var bold, italic int

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Emphasis:
			delta := 1
			if !entering {
				delta = -1
			}
			if node.Level >= 2 {
				bold += delta
			} else {
				italic += delta
			}
		case *ast.CodeSpan:
			if entering {
				runs = append(runs, Run{
					Text:   codeSpanText(node, src),
					Bold:   bold > 0,
					Italic: italic > 0,
					Font:   FontCode,
				})
				return ast.WalkSkipChildren, nil
			}
		case *ast.Text:
			if entering {
				value := string(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					value += " "
				}
				if value != "" {
					runs = append(runs, Run{Text: value, Bold: bold > 0, Italic: italic > 0})
				}
			}
		}
		return ast.WalkContinue, nil
	})

	if len(runs) == 0 {
		runs = []Run{Text(source)}
	}
	return Paragraph{Runs: runs}
}

// codeSpanText concatenates the text segments of a code span.
func codeSpanText(span *ast.CodeSpan, src []byte) string {
	var sb strings.Builder
	for c := span.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(src))
		}
	}
	return sb.String()
}
