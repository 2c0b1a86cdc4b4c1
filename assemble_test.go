package bookdocx

// Notes:
// - Ordering: manifest order is the sole determinant of stream order
// - Part boundaries: mandatory page break, never doubled
// - Invariants: table width, duplicate part ordinals, nil nodes
// - Fail-fast: a panicking builder aborts with the manifest index attached

import (
	"errors"
	"testing"
)

func chapterOf(name string, nodes ...Part) Chapter {
	return Chapter{Name: name, Build: func() Sequence { return Seq(nodes...) }}
}

// kindsOf projects a stream to its node kinds for compact assertions.
func kindsOf(nodes []Node) []NodeKind {
	out := make([]NodeKind, len(nodes))
	for i, n := range nodes {
		out[i] = n.Kind()
	}
	return out
}

// ---------------------------------------------------------------------------
// TestAssemble_Ordering - Manifest Order
// ---------------------------------------------------------------------------

func TestAssemble_Ordering(t *testing.T) {
	t.Parallel()

	a := chapterOf("A", NewHeading(1, "Alpha"))
	b := chapterOf("B", NewHeading(1, "Beta"))
	style := DefaultStyle()

	headingTexts := func(nodes []Node) []string {
		var out []string
		for _, n := range nodes {
			if h, ok := n.(Heading); ok {
				out = append(out, h.Text)
			}
		}
		return out
	}

	forward, err := Assemble(Manifest{a, b}, style)
	if err != nil {
		t.Fatalf("Assemble(a, b) = %v", err)
	}
	reversed, err := Assemble(Manifest{b, a}, style)
	if err != nil {
		t.Fatalf("Assemble(b, a) = %v", err)
	}

	fw, rv := headingTexts(forward), headingTexts(reversed)
	if len(fw) != 2 || len(rv) != 2 {
		t.Fatalf("heading counts = %d, %d, want 2, 2", len(fw), len(rv))
	}
	if fw[0] != "Alpha" || fw[1] != "Beta" {
		t.Errorf("forward order = %v", fw)
	}
	if rv[0] != "Beta" || rv[1] != "Alpha" {
		t.Errorf("reversed order = %v", rv)
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_Flattening - Conservation
// ---------------------------------------------------------------------------

func TestAssemble_Flattening(t *testing.T) {
	t.Parallel()

	// A builder returning a nested sequence yields the same flat node count
	// as manually concatenating its constituent calls.
	nested := chapterOf("Nested",
		NewHeading(1, "Title"),
		Code("go", "a := 1\nb := 2"),
		Definition("D", "Body."),
	)
	manualCount := len(Sequence{NewHeading(1, "Title")}) +
		len(Code("go", "a := 1\nb := 2")) +
		len(Sequence{Definition("D", "Body.")})

	nodes, err := Assemble(Manifest{nested}, DefaultStyle())
	if err != nil {
		t.Fatalf("Assemble() = %v", err)
	}
	if len(nodes) != manualCount {
		t.Errorf("assembled %d nodes, want %d: %v", len(nodes), manualCount, kindsOf(nodes))
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_PartBoundaries - Page Break Insertion
// ---------------------------------------------------------------------------

func TestAssemble_PartBoundaries(t *testing.T) {
	t.Parallel()

	countBreaks := func(nodes []Node) int {
		n := 0
		for _, node := range nodes {
			if node.Kind() == KindPageBreak {
				n++
			}
		}
		return n
	}

	t.Run("break inserted before a later part", func(t *testing.T) {
		t.Parallel()
		nodes, err := Assemble(Manifest{
			chapterOf("One", NewPartHeading(1, "First"), NewHeading(1, "A")),
			chapterOf("Two", NewPartHeading(2, "Second"), NewHeading(1, "B")),
		}, DefaultStyle())
		if err != nil {
			t.Fatalf("Assemble() = %v", err)
		}
		if got := countBreaks(nodes); got != 1 {
			t.Errorf("page breaks = %d, want 1: %v", got, kindsOf(nodes))
		}
	})

	t.Run("no break before the first part", func(t *testing.T) {
		t.Parallel()
		nodes, err := Assemble(Manifest{
			chapterOf("One", NewPartHeading(1, "First"), NewHeading(1, "A")),
		}, DefaultStyle())
		if err != nil {
			t.Fatalf("Assemble() = %v", err)
		}
		if got := countBreaks(nodes); got != 0 {
			t.Errorf("page breaks = %d, want 0", got)
		}
	})

	t.Run("explicit trailing break is not doubled", func(t *testing.T) {
		t.Parallel()
		nodes, err := Assemble(Manifest{
			chapterOf("One", NewPartHeading(1, "First"), NewHeading(1, "A"), Break()),
			chapterOf("Two", NewPartHeading(2, "Second"), NewHeading(1, "B")),
		}, DefaultStyle())
		if err != nil {
			t.Fatalf("Assemble() = %v", err)
		}
		if got := countBreaks(nodes); got != 1 {
			t.Errorf("page breaks = %d, want 1: %v", got, kindsOf(nodes))
		}
	})
}

// ---------------------------------------------------------------------------
// TestAssemble_TableWidthInvariant - Page Fit
// ---------------------------------------------------------------------------

func TestAssemble_TableWidthInvariant(t *testing.T) {
	t.Parallel()

	// Concrete scenario: pageContentWidth 9000, widths 5000+4000 pass,
	// 5000+5000 fail naming the owning chapter.
	style := DefaultStyle()
	style.PageContentWidth = 9000

	manifestWith := func(widths []int) Manifest {
		return Manifest{
			chapterOf("ChapterA", NewHeading(1, "A")),
			chapterOf("ChapterB", NewTable([]string{"A", "B"}, nil, widths)),
			chapterOf("ChapterC", NewHeading(1, "C")),
		}
	}

	t.Run("exact fit succeeds", func(t *testing.T) {
		t.Parallel()
		nodes, err := Assemble(manifestWith([]int{5000, 4000}), style)
		if err != nil {
			t.Fatalf("Assemble() = %v", err)
		}
		if len(nodes) != 3 {
			t.Errorf("node count = %d, want 3", len(nodes))
		}
	})

	t.Run("overflow fails naming the chapter", func(t *testing.T) {
		t.Parallel()
		_, err := Assemble(manifestWith([]int{5000, 5000}), style)
		if !errors.Is(err, ErrTableWidth) {
			t.Fatalf("Assemble() = %v, want %v", err, ErrTableWidth)
		}
		var authErr *AuthoringError
		if !errors.As(err, &authErr) {
			t.Fatalf("error %v is not an *AuthoringError", err)
		}
		if authErr.Chapter != "ChapterB" {
			t.Errorf("chapter = %q, want ChapterB", authErr.Chapter)
		}
		if authErr.NodeKind != KindTable {
			t.Errorf("node kind = %v, want table", authErr.NodeKind)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAssemble_DuplicatePartOrdinal - Cross-Chapter Invariant
// ---------------------------------------------------------------------------

func TestAssemble_DuplicatePartOrdinal(t *testing.T) {
	t.Parallel()

	_, err := Assemble(Manifest{
		chapterOf("One", NewPartHeading(1, "First")),
		chapterOf("Two", NewPartHeading(1, "Also First")),
	}, DefaultStyle())
	if !errors.Is(err, ErrDuplicatePart) {
		t.Fatalf("Assemble() = %v, want %v", err, ErrDuplicatePart)
	}
	var asmErr *AssemblyError
	if !errors.As(err, &asmErr) {
		t.Fatalf("error %v is not an *AssemblyError", err)
	}
	if asmErr.Index != 1 || asmErr.Chapter != "Two" {
		t.Errorf("error attribution = index %d chapter %q, want 1 %q", asmErr.Index, asmErr.Chapter, "Two")
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_FailFast - Builder Failures
// ---------------------------------------------------------------------------

func TestAssemble_FailFast(t *testing.T) {
	t.Parallel()

	t.Run("authoring panic carries chapter and index", func(t *testing.T) {
		t.Parallel()
		_, err := Assemble(Manifest{
			chapterOf("Good", NewHeading(1, "Fine")),
			{Name: "Bad", Build: func() Sequence {
				return Seq(NewHeading(0, "Broken"))
			}},
		}, DefaultStyle())
		if !errors.Is(err, ErrHeadingLevel) {
			t.Fatalf("Assemble() = %v, want %v", err, ErrHeadingLevel)
		}
		var asmErr *AssemblyError
		if !errors.As(err, &asmErr) {
			t.Fatalf("error %v is not an *AssemblyError", err)
		}
		if asmErr.Index != 1 || asmErr.Chapter != "Bad" {
			t.Errorf("attribution = index %d chapter %q", asmErr.Index, asmErr.Chapter)
		}
		var authErr *AuthoringError
		if !errors.As(err, &authErr) {
			t.Fatal("assembly error does not wrap the authoring error")
		}
	})

	t.Run("arbitrary panic becomes an assembly error", func(t *testing.T) {
		t.Parallel()
		_, err := Assemble(Manifest{
			{Name: "Explodes", Build: func() Sequence { panic("boom") }},
		}, DefaultStyle())
		var asmErr *AssemblyError
		if !errors.As(err, &asmErr) {
			t.Fatalf("Assemble() = %v, want *AssemblyError", err)
		}
		if asmErr.Index != 0 {
			t.Errorf("index = %d, want 0", asmErr.Index)
		}
	})

	t.Run("nil builder", func(t *testing.T) {
		t.Parallel()
		_, err := Assemble(Manifest{{Name: "Empty"}}, DefaultStyle())
		if !errors.Is(err, ErrNilBuilder) {
			t.Errorf("Assemble() = %v, want %v", err, ErrNilBuilder)
		}
	})

	t.Run("unnamed chapter", func(t *testing.T) {
		t.Parallel()
		_, err := Assemble(Manifest{{Name: " ", Build: func() Sequence { return nil }}}, DefaultStyle())
		if !errors.Is(err, ErrEmptyChapterName) {
			t.Errorf("Assemble() = %v, want %v", err, ErrEmptyChapterName)
		}
	})

	t.Run("nil node in sequence", func(t *testing.T) {
		t.Parallel()
		_, err := Assemble(Manifest{
			{Name: "Sparse", Build: func() Sequence { return Sequence{NewHeading(1, "A"), nil} }},
		}, DefaultStyle())
		if !errors.Is(err, ErrNilNode) {
			t.Errorf("Assemble() = %v, want %v", err, ErrNilNode)
		}
	})

	t.Run("empty manifest", func(t *testing.T) {
		t.Parallel()
		_, err := Assemble(nil, DefaultStyle())
		if !errors.Is(err, ErrEmptyManifest) {
			t.Errorf("Assemble() = %v, want %v", err, ErrEmptyManifest)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAssemble_Determinism - Referential Transparency
// ---------------------------------------------------------------------------

func TestAssemble_Determinism(t *testing.T) {
	t.Parallel()

	manifest := Manifest{
		chapterOf("One", NewPartHeading(1, "First"), NewHeading(1, "A"), Markdown("Some *text*.")),
		chapterOf("Two", NewHeading(1, "B"), Code("go", "x := 1")),
	}

	first, err := Assemble(manifest, DefaultStyle())
	if err != nil {
		t.Fatalf("Assemble() = %v", err)
	}
	second, err := Assemble(manifest, DefaultStyle())
	if err != nil {
		t.Fatalf("Assemble() second run = %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("node counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind() != second[i].Kind() {
			t.Errorf("node %d kinds differ: %v vs %v", i, first[i].Kind(), second[i].Kind())
		}
	}
}
