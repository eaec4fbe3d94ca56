package validate

import (
	"fmt"
	"strings"

	"github.com/eykd/contentcheck/internal/domain"
)

// checkQuality derives an estimated reading time from the body word
// count and emits advisory findings for unusually short or long
// documents. These never affect exit status.
func (v *Validator) checkQuality(body string, res *domain.ValidationResult) {
	words := len(strings.Fields(body))
	minutes := (words + v.cfg.WordsPerMinute - 1) / v.cfg.WordsPerMinute

	if minutes < v.cfg.MinReadingMinutes {
		res.Add(domain.Finding{
			Type:     domain.FindingShortRead,
			Severity: domain.SeverityInfo,
			Message: fmt.Sprintf("estimated reading time %d min (%d words); consider expanding",
				minutes, words),
		})
	}
	if minutes > v.cfg.MaxReadingMinutes {
		res.Add(domain.Finding{
			Type:     domain.FindingLongRead,
			Severity: domain.SeverityInfo,
			Message: fmt.Sprintf("estimated reading time %d min (%d words); consider splitting",
				minutes, words),
		})
	}
}
