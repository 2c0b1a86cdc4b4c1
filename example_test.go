package bookdocx_test

import (
	"context"
	"fmt"

	bookdocx "github.com/alnah/go-bookdocx"
	"github.com/alnah/go-bookdocx/examplebook"
)

// Example demonstrates generating a document from a chapter manifest.
func Example() {
	manifest := bookdocx.Manifest{
		{Name: "Introduction", Build: func() bookdocx.Sequence {
			return bookdocx.Seq(
				bookdocx.NewHeading(1, "Introduction"),
				bookdocx.Markdown("Welcome to the **first** chapter."),
			)
		}},
	}

	result, err := bookdocx.New().Generate(context.Background(), bookdocx.Input{Manifest: manifest})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("nodes:", result.Nodes)
	fmt.Println("has output:", len(result.DOCX) > 0)
	// Output:
	// nodes: 2
	// has output: true
}

// Example_withFrontMatter demonstrates a cover page and table of contents.
func Example_withFrontMatter() {
	result, err := bookdocx.New().Generate(context.Background(), bookdocx.Input{
		Manifest: examplebook.Manifest(),
		Cover: &bookdocx.Cover{
			Title:    "Foundations of Computation",
			Subtitle: "An Example Book",
			Author:   "Jane Doe",
			Date:     "2026-08-29",
			Version:  "v1.0",
		},
		TOC: &bookdocx.TOC{Title: "Contents", MaxLevel: 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("generated:", len(result.DOCX) > 0)
	// Output: generated: true
}

// Example_customStyle demonstrates overriding the style constants.
func Example_customStyle() {
	style := bookdocx.DefaultStyle()
	style.BodyFont = "Palatino"
	style.AccentColor = "7C3AED"

	svc := bookdocx.New(
		bookdocx.WithStyle(style),
		bookdocx.WithSyntaxTheme("monokai"),
	)

	result, err := svc.Generate(context.Background(), bookdocx.Input{Manifest: examplebook.Manifest()})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("generated:", len(result.DOCX) > 0)
	// Output: generated: true
}
