// Package examplebook is a small sample book exercising every primitive:
// parts, headings, styled and markdown paragraphs, definition and theorem
// blocks, tables, and highlighted code. It is the compiled-in manifest the
// bookdocx command generates, and doubles as integration-test content.
// Chapter builders are pure; the package holds no state.
package examplebook

import (
	bookdocx "github.com/alnah/go-bookdocx"
)

// Manifest returns the book's chapters in reading order.
func Manifest() bookdocx.Manifest {
	return bookdocx.Manifest{
		{Name: "Sets and Numbers", Build: setsAndNumbers},
		{Name: "Functions", Build: functions},
		{Name: "Algorithms", Build: algorithms},
		{Name: "Complexity", Build: complexity},
	}
}

func setsAndNumbers() bookdocx.Sequence {
	return bookdocx.Seq(
		bookdocx.NewPartHeading(1, "Foundations"),
		bookdocx.NewHeading(1, "Sets and Numbers"),
		bookdocx.Markdown("A **set** is an unordered collection of distinct objects. "+
			"Sets are written with braces, as in `{1, 2, 3}`, and membership with *element of*."),
		bookdocx.Definition("Subset", "A set A is a subset of B when every element of A is also an element of B."),
		bookdocx.NewSpacer(0),
		bookdocx.Theorem("Cantor", "For any set A, the power set of A has strictly greater cardinality than A."),
		bookdocx.Markdown("The theorem implies an unbounded hierarchy of infinities, "+
			"starting from the *countable* natural numbers."),
	)
}

func functions() bookdocx.Sequence {
	return bookdocx.Seq(
		bookdocx.NewHeading(1, "Functions"),
		bookdocx.Markdown("A **function** assigns to each element of its domain exactly one element of its codomain."),
		bookdocx.NewHeading(2, "Injections and Surjections"),
		bookdocx.Definition("Injection", "A function is injective when distinct inputs map to distinct outputs."),
		bookdocx.Definition("Surjection", "A function is surjective when every codomain element is an output."),
		bookdocx.NewHeading(2, "Common Examples"),
		bookdocx.NewTable(
			[]string{"Function", "Domain", "Injective"},
			[][]string{
				{"x + 1", "integers", "yes"},
				{"x * x", "integers", "no"},
				{"exp(x)", "reals", "yes"},
			},
			[]int{3120, 3120, 3120},
		),
	)
}

func algorithms() bookdocx.Sequence {
	return bookdocx.Seq(
		bookdocx.NewPartHeading(2, "Computation"),
		bookdocx.NewHeading(1, "Algorithms"),
		bookdocx.Markdown("An **algorithm** is a finite procedure computing a function. "+
			"Binary search locates a value in a sorted slice in logarithmic time:"),
		bookdocx.Code("go", `func search(xs []int, target int) int {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := (lo + hi) / 2
		if xs[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}`),
		bookdocx.Markdown("The loop maintains the invariant that `target`, if present, lies in `xs[lo:hi]`."),
	)
}

func complexity() bookdocx.Sequence {
	return bookdocx.Seq(
		bookdocx.NewHeading(1, "Complexity"),
		bookdocx.Markdown("Complexity classes group problems by the resources needed to solve them."),
		bookdocx.NewTable(
			[]string{"Class", "Bound"},
			[][]string{
				{"P", "polynomial time"},
				{"EXP", "exponential time"},
			},
			[]int{4680, 4680},
		),
		bookdocx.Theorem("Time Hierarchy", "Given more time, a Turing machine decides strictly more languages."),
		bookdocx.Break(),
	)
}
