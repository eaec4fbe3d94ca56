package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/eykd/contentcheck/internal/report"
)

// writeReport encodes the run report as JSON to w. Encoding failures
// are reported in-band as a JSON error object, so --json consumers
// always receive a parseable document.
func writeReport(w io.Writer, rep report.Report) {
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}
