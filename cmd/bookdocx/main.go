package main

import (
	"context"
	"fmt"
	"os"

	bookdocx "github.com/alnah/go-bookdocx"
	"github.com/alnah/go-bookdocx/examplebook"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(ExitSuccess)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.showVersion {
		fmt.Printf("bookdocx %s\n", Version)
		os.Exit(ExitSuccess)
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := run(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func run(flags *cliFlags) error {
	style := bookdocx.DefaultStyle()
	if flags.config != "" {
		loaded, err := loadStyle(flags.config)
		if err != nil {
			return err
		}
		style = loaded
	}

	opts := []bookdocx.Option{bookdocx.WithStyle(style)}
	if flags.codeTheme != "" {
		opts = append(opts, bookdocx.WithSyntaxTheme(flags.codeTheme))
	}

	input := bookdocx.Input{Manifest: examplebook.Manifest()}
	if !flags.noCover {
		input.Cover = &bookdocx.Cover{
			Title:    flags.title,
			Subtitle: flags.subtitle,
			Author:   flags.author,
			Date:     flags.date,
			Version:  flags.docVersion,
		}
	}
	if flags.toc {
		input.TOC = &bookdocx.TOC{MaxLevel: flags.tocDepth}
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Assembling %d chapters...\n", len(input.Manifest))
	}

	result, err := bookdocx.New(opts...).GenerateFile(context.Background(), input, flags.output)
	if err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Printf("Created %s (%d nodes)\n", flags.output, result.Nodes)
	}
	return nil
}
