package bookdocx

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultSyntaxTheme is the chroma style used for code blocks unless
// overridden with WithSyntaxTheme.
const DefaultSyntaxTheme = "github"

// highlightCode tokenizes code block lines and returns one run slice per
// line, colored from the named chroma style. Unknown languages and
// tokenizer failures degrade to plain monochrome runs; a code block never
// fails serialization over highlighting.
func highlightCode(language string, lines []string, theme string) [][]Run {
	source := strings.Join(lines, "\n")

	lexer := lexers.Get(language)
	if lexer == nil {
		return plainCodeRuns(lines)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return plainCodeRuns(lines)
	}

	style := styles.Get(theme)
	out := make([][]Run, 1, len(lines))
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := style.Get(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, nil)
			}
			if part == "" {
				continue
			}
			run := Run{Text: part, Font: FontCode}
			if entry.Colour.IsSet() {
				run.Color = strings.ToUpper(strings.TrimPrefix(entry.Colour.String(), "#"))
			}
			if entry.Bold == chroma.Yes {
				run.Bold = true
			}
			if entry.Italic == chroma.Yes {
				run.Italic = true
			}
			out[len(out)-1] = append(out[len(out)-1], run)
		}
	}

	// Tokenizers may emit fewer trailing newlines than the source had.
	for len(out) < len(lines) {
		out = append(out, nil)
	}
	return out[:len(lines)]
}

// plainCodeRuns renders lines in the code font with no coloring.
func plainCodeRuns(lines []string) [][]Run {
	out := make([][]Run, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		out[i] = []Run{{Text: line, Font: FontCode}}
	}
	return out
}
