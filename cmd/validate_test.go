package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/eykd/contentcheck/internal/domain"
)

// mockCorpusValidator is a test double for CorpusValidator.
type mockCorpusValidator struct {
	results     []*domain.ValidationResult
	err         error
	gotTarget   string
	gotChanged  bool
	invocations int
}

func (m *mockCorpusValidator) Run(_ context.Context, target string, changed bool) ([]*domain.ValidationResult, error) {
	m.invocations++
	m.gotTarget = target
	m.gotChanged = changed
	return m.results, m.err
}

// newTestCmd builds a bare command wired to buffers for output capture.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetContext(context.Background())
	return cmd, buf
}

func cleanResult(path string) *domain.ValidationResult {
	return domain.NewValidationResult(path)
}

func failingResult(path string) *domain.ValidationResult {
	res := domain.NewValidationResult(path)
	res.Add(domain.Finding{
		Type:     domain.FindingMissingTitle,
		Severity: domain.SeverityError,
		Message:  "missing title",
	})
	return res
}

func warningResult(path string) *domain.ValidationResult {
	res := domain.NewValidationResult(path)
	res.Add(domain.Finding{
		Type:     domain.FindingThinStructure,
		Severity: domain.SeverityWarning,
		Message:  "thin",
	})
	return res
}

func TestRunValidateAndReport_CleanRun(t *testing.T) {
	runner := &mockCorpusValidator{results: []*domain.ValidationResult{cleanResult("a.en.md")}}
	cmd, buf := newTestCmd()

	err := runValidateAndReport(cmd, runner, ValidateOptions{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(buf.String(), "all files passed") {
		t.Errorf("output %q should report a clean run", buf.String())
	}
}

func TestRunValidateAndReport_ErrorsFailTheRun(t *testing.T) {
	runner := &mockCorpusValidator{results: []*domain.ValidationResult{failingResult("a.en.md")}}
	cmd, _ := newTestCmd()

	err := runValidateAndReport(cmd, runner, ValidateOptions{})

	var failed *ValidationFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("error = %v, want ValidationFailedError", err)
	}
	if failed.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", failed.ExitCode())
	}
	if failed.Errors != 1 {
		t.Errorf("Errors = %d, want 1", failed.Errors)
	}
}

func TestRunValidateAndReport_WarningsDoNotFail(t *testing.T) {
	runner := &mockCorpusValidator{results: []*domain.ValidationResult{warningResult("a.en.md")}}
	cmd, buf := newTestCmd()

	if err := runValidateAndReport(cmd, runner, ValidateOptions{}); err != nil {
		t.Fatalf("warnings must not fail the run, got %v", err)
	}
	if !strings.Contains(buf.String(), "passed with warnings") {
		t.Errorf("output %q should carry the cautionary message", buf.String())
	}
}

func TestRunValidateAndReport_JSONOutput(t *testing.T) {
	runner := &mockCorpusValidator{results: []*domain.ValidationResult{failingResult("a.en.md")}}
	cmd, buf := newTestCmd()

	_ = runValidateAndReport(cmd, runner, ValidateOptions{JSON: true})

	var payload struct {
		Files []struct {
			Path   string          `json:"path"`
			Errors []domain.Finding `json:"errors"`
		} `json:"files"`
		Summary domain.Summary `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(payload.Files) != 1 || payload.Files[0].Path != "a.en.md" {
		t.Errorf("files = %+v, want one entry for a.en.md", payload.Files)
	}
	if payload.Summary.Errors != 1 {
		t.Errorf("summary errors = %d, want 1", payload.Summary.Errors)
	}
}

func TestRunValidateAndReport_PassesModeThrough(t *testing.T) {
	runner := &mockCorpusValidator{}
	cmd, _ := newTestCmd()

	_ = runValidateAndReport(cmd, runner, ValidateOptions{Target: "content/a.en.md", Changed: true})

	if runner.gotTarget != "content/a.en.md" {
		t.Errorf("target = %q, want content/a.en.md", runner.gotTarget)
	}
	if !runner.gotChanged {
		t.Error("changed flag not passed through")
	}
}

func TestRunValidateAndReport_RunnerErrorPropagates(t *testing.T) {
	runner := &mockCorpusValidator{err: errors.New("walk failed")}
	cmd, _ := newTestCmd()

	err := runValidateAndReport(cmd, runner, ValidateOptions{})
	if err == nil || !strings.Contains(err.Error(), "walk failed") {
		t.Errorf("error = %v, want walk failure", err)
	}
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{"validation failure", &ValidationFailedError{Errors: 2}, 1},
		{"doctor failure", &DoctorFailedError{Failures: 1}, 1},
		{"generic error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFromError(tt.err); got != tt.want {
				t.Errorf("ExitCodeFromError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
