package cmd

import (
	"context"
	"io"

	"github.com/eykd/contentcheck/internal/config"
	"github.com/eykd/contentcheck/internal/domain"
	"github.com/eykd/contentcheck/internal/fs"
	"github.com/eykd/contentcheck/internal/selector"
	"github.com/eykd/contentcheck/internal/validate"
)

// corpusRunner wires the selector and validator into the CorpusValidator
// interface the commands consume.
type corpusRunner struct {
	sel       *selector.Selector
	validator *validate.Validator
}

// newCorpusRunner builds a runner over the OS adapters. Operational
// notices (like git fallback) go to the notices writer.
func newCorpusRunner(cfg *config.Config, notices io.Writer) *corpusRunner {
	return &corpusRunner{
		sel: selector.New(
			&fs.OSCorpusWalker{},
			&fs.GitCLI{},
			notices,
			cfg.ContentRoots,
			cfg.Extensions,
		),
		validator: validate.New(&fs.OSContentReader{}, cfg),
	}
}

// Run resolves the file set for the requested mode and validates each
// file in order, one at a time.
func (r *corpusRunner) Run(ctx context.Context, target string, changed bool) ([]*domain.ValidationResult, error) {
	var files []string
	var err error

	switch {
	case target != "":
		files = []string{target}
	case changed:
		files, err = r.sel.Changed(ctx)
	default:
		files, err = r.sel.All(ctx)
	}
	if err != nil {
		return nil, err
	}

	results := make([]*domain.ValidationResult, 0, len(files))
	for _, f := range files {
		results = append(results, r.validator.ValidateFile(ctx, f))
	}
	return results, nil
}
