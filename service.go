package bookdocx

import (
	"context"
	"fmt"

	"github.com/alnah/go-bookdocx/internal/fileutil"
)

// Service orchestrates the assemble-and-serialize pipeline. The zero
// configuration uses DefaultStyle and the default syntax theme; a Service
// is immutable after New and safe for reuse across runs.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithStyle).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			style: DefaultStyle(),
			theme: DefaultSyntaxTheme,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs the full pipeline and returns the document as bytes.
// The context is used for cancellation between stages; a run is either a
// full success or a full abort, never a partial document.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	nodes, err := Assemble(input.Manifest, s.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	data, err := serialize(nodes, s.cfg.style, s.cfg.theme, input.Cover, input.TOC)
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &Result{DOCX: data, Nodes: len(nodes)}, nil
}

// GenerateFile runs the pipeline and writes the artifact to path
// atomically: the bytes land in a temp file that is renamed into place, so
// no partially written document is ever visible, and nothing is written at
// all when generation fails.
func (s *Service) GenerateFile(ctx context.Context, input Input, path string) (*Result, error) {
	result, err := s.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := fileutil.WriteFileAtomic(path, result.DOCX); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}
	return result, nil
}

func (s *Service) validateInput(input Input) error {
	if len(input.Manifest) == 0 {
		return ErrEmptyManifest
	}
	if err := s.cfg.style.Validate(); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}
	if err := input.Cover.Validate(); err != nil {
		return err
	}
	if err := input.TOC.Validate(); err != nil {
		return err
	}
	return nil
}
