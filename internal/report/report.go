// Package report renders validation results for the console, aggregates
// summary counts, and exports machine-readable reports.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/eykd/contentcheck/internal/domain"
)

// Report is the machine-readable shape of a full validation run,
// emitted by --json and --report.
type Report struct {
	Files   []*domain.ValidationResult `json:"files"`
	Summary domain.Summary             `json:"summary"`
}

// Build assembles a Report from per-document results.
func Build(results []*domain.ValidationResult) Report {
	return Report{Files: results, Summary: Aggregate(results)}
}

// Aggregate computes summary counts over a run's results. A file
// counts as clean when it has no errors and no warnings; info findings
// are counted but never mark a file as having issues.
func Aggregate(results []*domain.ValidationResult) domain.Summary {
	var sum domain.Summary
	for _, res := range results {
		if res.Clean() {
			sum.CleanFiles++
		} else {
			sum.FilesWithIssues++
		}
		sum.Errors += len(res.Errors)
		sum.Warnings += len(res.Warnings)
		sum.Info += len(res.Info)
	}
	return sum
}

// Reporter writes human-readable output for a validation run.
type Reporter struct {
	out io.Writer
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// PrintResult writes one document's findings: a single success line for
// a clean file, otherwise a header followed by errors, warnings, and
// info in that order.
func (r *Reporter) PrintResult(res *domain.ValidationResult) {
	if res.Clean() {
		fmt.Fprintf(r.out, "ok   %s\n", res.Path)
		return
	}

	fmt.Fprintf(r.out, "%s\n", res.Path)
	for _, f := range res.Errors {
		r.printFinding(f)
	}
	for _, f := range res.Warnings {
		r.printFinding(f)
	}
	for _, f := range res.Info {
		r.printFinding(f)
	}
}

func (r *Reporter) printFinding(f domain.Finding) {
	if f.Line > 0 {
		fmt.Fprintf(r.out, "  [%s] line %d: %s\n", f.Severity, f.Line, f.Message)
		return
	}
	fmt.Fprintf(r.out, "  [%s] %s\n", f.Severity, f.Message)
}

// PrintSummary writes the aggregate counts and the closing status line.
func (r *Reporter) PrintSummary(sum domain.Summary) {
	fmt.Fprintf(r.out, "\n%d clean, %d with issues, %d errors, %d warnings, %d info\n",
		sum.CleanFiles, sum.FilesWithIssues, sum.Errors, sum.Warnings, sum.Info)

	switch {
	case sum.Errors > 0:
		fmt.Fprintln(r.out, "validation failed")
	case sum.Warnings > 0:
		fmt.Fprintln(r.out, "validation passed with warnings")
	default:
		fmt.Fprintln(r.out, "all files passed")
	}
}

// Locker abstracts the advisory lock guarding report file writes.
type Locker interface {
	TryLock(ctx context.Context) error
	Unlock() error
}

// WriteFile writes the report as indented JSON to path under an
// advisory lock, so concurrent CI invocations sharing a report path
// serialize instead of interleaving.
func WriteFile(ctx context.Context, path string, rep Report, locker Locker) error {
	if err := locker.TryLock(ctx); err != nil {
		return err
	}
	defer locker.Unlock() //nolint:errcheck // best-effort release

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
