// Package bookdocx compiles chapter modules into a single styled DOCX
// document.
//
// # Quick Start
//
// Declare chapters, create a service, and generate:
//
//	manifest := bookdocx.Manifest{
//	    {Name: "Introduction", Build: func() bookdocx.Sequence {
//	        return bookdocx.Seq(
//	            bookdocx.NewHeading(1, "Introduction"),
//	            bookdocx.Markdown("Welcome to the **first** chapter."),
//	        )
//	    }},
//	}
//
//	svc := bookdocx.New()
//	result, err := svc.GenerateFile(ctx, bookdocx.Input{Manifest: manifest}, "book.docx")
//
// # Pipeline
//
// Generation is a linear, single-threaded batch run:
//
//  1. Each chapter builder runs in manifest order; results are flattened
//     into one node stream with page breaks at part boundaries.
//  2. The stream is validated (table widths, part ordinals) and numbered
//     in a single left-to-right pass.
//  3. The stream is serialized into the DOCX container and written
//     atomically. A failed run writes nothing.
//
// # Content Nodes
//
// Chapters are pure functions returning ordered node sequences built from
// the constructors in this package: NewHeading, NewPartHeading, P,
// Markdown, NewTable, Code, Definition, Theorem, NewSpacer, Break.
// Constructors validate at construction time and panic with an
// *AuthoringError on invalid static content; Assemble recovers the panic
// and attributes it to the offending chapter and manifest index.
//
// # Configuration
//
// Visual defaults live in a single immutable StyleConstants value, passed
// by value into every stage. Use functional options to customize:
//
//	style := bookdocx.DefaultStyle()
//	style.BodyFont = "Palatino"
//
//	svc := bookdocx.New(
//	    bookdocx.WithStyle(style),
//	    bookdocx.WithSyntaxTheme("monokai"),
//	)
//
// Table column widths are explicit, in twips, and must fit the page
// content width; the engine never redistributes them. Code blocks are
// syntax-highlighted with chroma when the language is known.
//
// # Determinism
//
// Builders are referentially transparent and the container is written with
// fixed part order and zero timestamps, so an unchanged manifest and style
// produce byte-identical output on every run.
package bookdocx
