package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/contentcheck/internal/domain"
	"github.com/eykd/contentcheck/internal/lock"
	"github.com/eykd/contentcheck/internal/report"
)

// ValidateOptions holds the flags controlling a validation run.
type ValidateOptions struct {
	// Target is an explicit file path; empty means corpus or changed
	// mode.
	Target string
	// Changed restricts the run to files changed in version control.
	Changed bool
	// JSON switches output to the machine-readable report.
	JSON bool
	// ReportPath, when set, also writes the JSON report to a file.
	ReportPath string
}

// CorpusValidator defines the interface for running a validation pass.
type CorpusValidator interface {
	Run(ctx context.Context, target string, changed bool) ([]*domain.ValidationResult, error)
}

// ValidationFailedError is returned when a run produced at least one
// error-severity finding. Warnings alone never fail a run.
type ValidationFailedError struct {
	Errors   int
	Warnings int
}

// Error implements the error interface.
func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation found %d errors, %d warnings", e.Errors, e.Warnings)
}

// ExitCode returns the exit code for a failed validation (always 1).
func (e *ValidationFailedError) ExitCode() int {
	return 1
}

// runValidateAndReport runs the validator and renders results as JSON
// or human-readable text. It returns a ValidationFailedError when any
// error-severity finding exists.
func runValidateAndReport(cmd *cobra.Command, runner CorpusValidator, opts ValidateOptions) error {
	results, err := runner.Run(cmd.Context(), opts.Target, opts.Changed)
	if err != nil {
		return err
	}

	rep := report.Build(results)

	if opts.JSON {
		writeReport(cmd.OutOrStdout(), rep)
	} else {
		r := report.New(cmd.OutOrStdout())
		for _, res := range results {
			r.PrintResult(res)
		}
		r.PrintSummary(rep.Summary)
	}

	if opts.ReportPath != "" {
		locker := lock.NewFromPath(opts.ReportPath + ".lock")
		if err := report.WriteFile(cmd.Context(), opts.ReportPath, rep, locker); err != nil {
			return err
		}
	}

	if rep.Summary.Errors > 0 {
		return &ValidationFailedError{Errors: rep.Summary.Errors, Warnings: rep.Summary.Warnings}
	}
	return nil
}
