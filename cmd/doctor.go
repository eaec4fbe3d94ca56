package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

// DoctorFailedError is returned when an environment check failed.
type DoctorFailedError struct {
	Failures int
}

// Error implements the error interface.
func (e *DoctorFailedError) Error() string {
	return fmt.Sprintf("doctor found %d problems", e.Failures)
}

// ExitCode returns the exit code for a failed diagnosis (always 1).
func (e *DoctorFailedError) ExitCode() int {
	return 1
}

// NewDoctorCmd creates the doctor command. It diagnoses the environment
// the validator runs in: config parseability, content roots, and git
// availability. A missing git is a warning, since the selector degrades
// to a full scan without it.
func NewDoctorCmd(cfgFile string) *cobra.Command {
	return &cobra.Command{
		Use:          "doctor",
		Short:        "Diagnose the validation environment",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failures := 0

			// The persistent --config flag is inherited from root.
			if explicit, err := cmd.Flags().GetString("config"); err == nil && explicit != "" {
				cfgFile = explicit
			}

			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				fmt.Fprintf(out, "fail config: %v\n", err)
				failures++
				return &DoctorFailedError{Failures: failures}
			}
			fmt.Fprintln(out, "ok   config")

			for _, root := range cfg.ContentRoots {
				info, err := os.Stat(root)
				switch {
				case err != nil:
					fmt.Fprintf(out, "fail content root %s: %v\n", root, err)
					failures++
				case !info.IsDir():
					fmt.Fprintf(out, "fail content root %s: not a directory\n", root)
					failures++
				default:
					fmt.Fprintf(out, "ok   content root %s\n", root)
				}
			}

			if _, err := exec.LookPath("git"); err != nil {
				fmt.Fprintln(out, "warn git: not found; --changed will fall back to full scans")
			} else {
				fmt.Fprintln(out, "ok   git")
			}

			if failures > 0 {
				return &DoctorFailedError{Failures: failures}
			}
			return nil
		},
	}
}
