package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestContextError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ContextError
		want string
	}{
		{
			name: "op and path",
			err:  &ContextError{Op: "read", Path: "content/guide.en.md", Err: errors.New("permission denied")},
			want: "read: content/guide.en.md: permission denied",
		},
		{
			name: "op only",
			err:  &ContextError{Op: "select", Err: errors.New("no content roots")},
			want: "select: no content roots",
		},
		{
			name: "path only",
			err:  &ContextError{Path: "content/guide.en.md", Err: errors.New("not found")},
			want: "content/guide.en.md: not found",
		},
		{
			name: "error only",
			err:  &ContextError{Err: errors.New("unknown error")},
			want: "unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContextError_Unwrap(t *testing.T) {
	inner := errors.New("inner error")
	err := &ContextError{Op: "read", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("ContextError should unwrap to inner error")
	}
}

func TestContextError_Unwrap_ExitCoder(t *testing.T) {
	inner := &ValidationFailedError{Errors: 2, Warnings: 1}
	err := &ContextError{Op: "validate", Err: inner}

	// ExitCodeFromError should find the wrapped ExitCoder
	code := ExitCodeFromError(err)
	if code != 1 {
		t.Errorf("ExitCodeFromError(ContextError wrapping ValidationFailedError) = %d, want 1", code)
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "simple error",
			err:  errors.New("something failed"),
			want: "contentcheck: something failed\n",
		},
		{
			name: "context error with op and path",
			err:  &ContextError{Op: "read", Path: "content/guide.en.md", Err: errors.New("permission denied")},
			want: "contentcheck: read: content/guide.en.md: permission denied\n",
		},
		{
			name: "context error with op only",
			err:  &ContextError{Op: "select", Err: errors.New("no content roots")},
			want: "contentcheck: select: no content roots\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			if got != tt.want {
				t.Errorf("FormatError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunCLI_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		runErr   error
		wantCode int
	}{
		{
			name:     "nil error returns 0",
			runErr:   nil,
			wantCode: 0,
		},
		{
			name:     "generic error returns 1",
			runErr:   errors.New("something went wrong"),
			wantCode: 1,
		},
		{
			name:     "validation failure returns 1",
			runErr:   &ValidationFailedError{Errors: 3, Warnings: 0},
			wantCode: 1,
		},
		{
			name:     "doctor failure returns 1",
			runErr:   &DoctorFailedError{Failures: 2},
			wantCode: 1,
		},
		{
			name:     "context error wrapping generic returns 1",
			runErr:   &ContextError{Op: "read", Err: errors.New("fail")},
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{
				Use:          "test",
				SilenceUsage: true,
				RunE: func(cmd *cobra.Command, args []string) error {
					return tt.runErr
				},
			}

			stdout := new(bytes.Buffer)
			stderr := new(bytes.Buffer)

			got := RunCLI(cmd, []string{}, stdout, stderr)
			if got != tt.wantCode {
				t.Errorf("RunCLI() exit code = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestRunCLI_ErrorsWrittenToStderr(t *testing.T) {
	cmd := &cobra.Command{
		Use:          "test",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return &ContextError{Op: "read", Path: "content/guide.en.md", Err: errors.New("permission denied")}
		},
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	RunCLI(cmd, []string{}, stdout, stderr)

	// Error message should appear in stderr with the contentcheck prefix
	if !strings.Contains(stderr.String(), "contentcheck:") {
		t.Errorf("expected 'contentcheck:' prefix in stderr, got: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "permission denied") {
		t.Errorf("expected error message in stderr, got: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "content/guide.en.md") {
		t.Errorf("expected file path in stderr, got: %q", stderr.String())
	}

	// Error should NOT appear in stdout
	if strings.Contains(stdout.String(), "permission denied") {
		t.Errorf("error should not appear in stdout, got: %q", stdout.String())
	}
}

func TestRunCLI_NoStderrOnSuccess(t *testing.T) {
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	code := RunCLI(cmd, []string{}, stdout, stderr)

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stderr.Len() > 0 {
		t.Errorf("stderr should be empty on success, got: %q", stderr.String())
	}
}
