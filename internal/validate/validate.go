// Package validate implements the content validator: a single
// synchronous pass over one document that checks heading structure,
// frontmatter conventions, locale-tagged filenames, renderer-breaking
// syntax, code fence language tags, and reading-time heuristics.
package validate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/eykd/contentcheck/internal/config"
	"github.com/eykd/contentcheck/internal/domain"
	"github.com/eykd/contentcheck/internal/frontmatter"
)

// ContentReader abstracts reading a document's full text.
type ContentReader interface {
	ReadFile(ctx context.Context, path string) (string, error)
}

// Validator runs every check over documents read through a
// ContentReader. It holds no per-document state; ValidateFile is
// reentrant.
type Validator struct {
	reader ContentReader
	cfg    *config.Config
}

// New creates a Validator with the given reader and configuration.
func New(reader ContentReader, cfg *config.Config) *Validator {
	return &Validator{reader: reader, cfg: cfg}
}

// ValidateFile validates a single document and returns its result. A
// read failure is recorded as an error finding on the result rather
// than returned, so a bad file never aborts the run.
func (v *Validator) ValidateFile(ctx context.Context, path string) *domain.ValidationResult {
	res := domain.NewValidationResult(path)

	content, err := v.reader.ReadFile(ctx, path)
	if err != nil {
		res.Add(domain.Finding{
			Type:     domain.FindingUnreadableFile,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("cannot read file: %v", err),
		})
		return res
	}

	block, body, hasFM := frontmatter.Split(content)
	fields, _ := frontmatter.Parse(content)

	// Body line numbers are reported relative to the full document, so
	// count the lines the frontmatter block consumed.
	offset := strings.Count(content[:len(content)-len(body)], "\n")
	lines := strings.Split(body, "\n")

	headings := scanHeadings(lines, offset)
	v.checkHeadings(headings, res)
	v.checkFrontmatter(fields, hasFM, block, res)
	v.checkFilename(filepath.Base(path), res)
	v.checkSyntax(lines, offset, res)
	v.checkCodeBlocks(lines, offset, res)
	v.checkQuality(body, res)

	return res
}

// checkFilename enforces the base.<locale>.<ext> naming convention that
// encodes language routing.
func (v *Validator) checkFilename(name string, res *domain.ValidationResult) {
	pf, err := domain.ParseFilename(name)
	if err == nil && contains(v.cfg.Locales, pf.Locale) && contains(v.cfg.Extensions, pf.Ext) {
		return
	}
	res.Add(domain.Finding{
		Type:     domain.FindingInvalidFilename,
		Severity: domain.SeverityError,
		Message: fmt.Sprintf("filename %q must follow name.<locale>.<ext> (locales: %s; extensions: %s)",
			name, strings.Join(v.cfg.Locales, ", "), strings.Join(v.cfg.Extensions, ", ")),
	})
}

func contains(set []string, s string) bool {
	for _, e := range set {
		if e == s {
			return true
		}
	}
	return false
}

// isFence reports whether a line toggles fenced code block state.
func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}
