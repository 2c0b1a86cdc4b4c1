package main

import (
	"errors"
	"os"

	bookdocx "github.com/alnah/go-bookdocx"
)

// Exit codes for the bookdocx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or content validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is/As to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrConfigNotFound) {
		return ExitIO
	}

	// Usage/config/content validation errors (exit 2)
	var authoringErr *bookdocx.AuthoringError
	var assemblyErr *bookdocx.AssemblyError
	if errors.As(err, &authoringErr) ||
		errors.As(err, &assemblyErr) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrUnknownStyle) ||
		errors.Is(err, bookdocx.ErrEmptyManifest) ||
		errors.Is(err, bookdocx.ErrEmptyCoverTitle) ||
		errors.Is(err, bookdocx.ErrInvalidTOCDepth) ||
		errors.Is(err, bookdocx.ErrInvalidFont) ||
		errors.Is(err, bookdocx.ErrInvalidSize) ||
		errors.Is(err, bookdocx.ErrInvalidColor) ||
		errors.Is(err, bookdocx.ErrInvalidWidth) ||
		errors.Is(err, bookdocx.ErrInvalidMargin) {
		return ExitUsage
	}

	return ExitGeneral
}
