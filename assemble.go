package bookdocx

import (
	"fmt"
	"strings"
)

// Chapter pairs a name, used in diagnostics, with its builder. A builder is
// a pure zero-argument function returning an ordered node sequence; it must
// be referentially transparent.
type Chapter struct {
	Name  string
	Build func() Sequence
}

// Manifest is the declared, ordered registry of chapters. Manifest order is
// the sole determinant of document order: no reordering, no deduplication,
// no parallel invocation. Builders may share numbering through their
// ordinals, so they run sequentially and in order.
type Manifest []Chapter

// Assemble invokes every chapter builder in manifest order and concatenates
// the results into one flat node stream. It inserts a page break before
// each part boundary unless one is already pending, enforces that declared
// table widths fit the page, and rejects duplicate part ordinals.
//
// A builder panic aborts assembly immediately; nothing assembled so far is
// ever passed to the serializer. Authoring panics surface as an
// *AssemblyError wrapping the *AuthoringError, both carrying the offending
// chapter.
func Assemble(manifest Manifest, style StyleConstants) ([]Node, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if len(manifest) == 0 {
		return nil, ErrEmptyManifest
	}

	var out []Node
	partOwners := make(map[int]string)

	for i, ch := range manifest {
		if strings.TrimSpace(ch.Name) == "" {
			return nil, &AssemblyError{Index: i, Chapter: ch.Name, Err: ErrEmptyChapterName}
		}
		if ch.Build == nil {
			return nil, &AssemblyError{Index: i, Chapter: ch.Name, Err: ErrNilBuilder}
		}

		seq, err := buildChapter(ch)
		if err != nil {
			return nil, &AssemblyError{Index: i, Chapter: ch.Name, Err: err}
		}

		for _, n := range seq {
			if n == nil {
				return nil, &AssemblyError{Index: i, Chapter: ch.Name, Err: ErrNilNode}
			}

			switch node := n.(type) {
			case PartHeading:
				if owner, dup := partOwners[node.Ordinal]; dup {
					return nil, &AssemblyError{
						Index:   i,
						Chapter: ch.Name,
						Err:     fmt.Errorf("%w: part %d already opened by chapter %q", ErrDuplicatePart, node.Ordinal, owner),
					}
				}
				partOwners[node.Ordinal] = ch.Name
				// Mandatory break at a part boundary, never doubled.
				if len(out) > 0 && out[len(out)-1].Kind() != KindPageBreak {
					out = append(out, PageBreak{})
				}
			case Table:
				total := 0
				for _, w := range node.ColWidths {
					total += w
				}
				if total > style.PageContentWidth {
					return nil, &AuthoringError{
						NodeKind: KindTable,
						Chapter:  ch.Name,
						Err:      fmt.Errorf("%w: %d twips over %d", ErrTableWidth, total, style.PageContentWidth),
					}
				}
			}

			out = append(out, n)
		}
	}

	return out, nil
}

// buildChapter invokes the builder, converting panics into errors so one
// bad chapter cannot take the process down without attribution.
func buildChapter(ch Chapter) (seq Sequence, err error) {
	defer func() {
		if r := recover(); r != nil {
			if authErr, ok := r.(*AuthoringError); ok {
				if authErr.Chapter == "" {
					authErr.Chapter = ch.Name
				}
				err = authErr
				return
			}
			err = fmt.Errorf("builder panic: %v", r)
		}
	}()
	return ch.Build(), nil
}
