package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line options.
type cliFlags struct {
	output      string
	config      string
	title       string
	subtitle    string
	author      string
	date        string
	docVersion  string
	noCover     bool
	toc         bool
	tocDepth    int
	codeTheme   string
	quiet       bool
	verbose     bool
	showVersion bool
}

// parseFlags parses CLI arguments. args includes the program name.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("bookdocx", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "book.docx", "output file path")
	fs.StringVarP(&f.config, "config", "c", "", "style preset name or YAML config file")
	fs.StringVar(&f.title, "title", "Foundations of Computation", "cover title")
	fs.StringVar(&f.subtitle, "subtitle", "", "cover subtitle")
	fs.StringVar(&f.author, "author", "", "cover author")
	fs.StringVar(&f.date, "date", "", "cover date (free-form)")
	fs.StringVar(&f.docVersion, "doc-version", "", "cover version label")
	fs.BoolVar(&f.noCover, "no-cover", false, "omit the cover page")
	fs.BoolVar(&f.toc, "toc", true, "include a table of contents")
	fs.IntVar(&f.tocDepth, "toc-depth", 0, "deepest heading level in the TOC (0 = default)")
	fs.StringVar(&f.codeTheme, "code-theme", "", "chroma style for code blocks")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}
