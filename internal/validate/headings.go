package validate

import (
	"fmt"
	"strings"

	"github.com/eykd/contentcheck/internal/domain"
)

// scanHeadings extracts level 1-4 headings from body lines in document
// order. Lines inside fenced code blocks are ignored: a code sample
// containing "# comment" must not be mistaken for a heading. offset is
// the number of document lines preceding the body.
func scanHeadings(lines []string, offset int) []domain.Heading {
	var headings []domain.Heading
	inCodeBlock := false

	for i, line := range lines {
		if isFence(line) {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			continue
		}
		if level, text, ok := parseHeading(line); ok {
			headings = append(headings, domain.Heading{
				Level: level,
				Line:  offset + i + 1,
				Text:  text,
			})
		}
	}
	return headings
}

// parseHeading recognizes one to four leading # characters followed by
// a space and non-# text.
func parseHeading(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 4 || n >= len(line) || line[n] != ' ' {
		return 0, "", false
	}
	text = strings.TrimSpace(line[n+1:])
	if text == "" || strings.HasPrefix(text, "#") {
		return 0, "", false
	}
	return n, text, true
}

// checkHeadings applies the heading structure rules. The checks are
// independent: every applicable finding is emitted.
func (v *Validator) checkHeadings(headings []domain.Heading, res *domain.ValidationResult) {
	var h1s, h2s []domain.Heading
	for _, h := range headings {
		switch h.Level {
		case 1:
			h1s = append(h1s, h)
		case 2:
			h2s = append(h2s, h)
		}
	}

	if len(h1s) == 0 {
		res.Add(domain.Finding{
			Type:     domain.FindingMissingTitle,
			Severity: domain.SeverityError,
			Message:  "missing title: document has no level-1 heading",
		})
	}
	if len(h1s) > 1 {
		res.Add(domain.Finding{
			Type:     domain.FindingDuplicateTitle,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("found %d level-1 headings; only the title may be level 1", len(h1s)),
			Line:     h1s[len(h1s)-1].Line,
		})
	}

	if len(h2s) < v.cfg.MinH2Count {
		res.Add(domain.Finding{
			Type:     domain.FindingThinStructure,
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("only %d level-2 headings; at least %d recommended for navigation",
				len(h2s), v.cfg.MinH2Count),
		})
	}

	// Hierarchy skips over adjacent headings, ignoring the title level.
	prevLevel := 0
	for _, h := range headings {
		if h.Level == 1 {
			continue
		}
		if prevLevel != 0 && h.Level-prevLevel > 1 {
			res.Add(domain.Finding{
				Type:     domain.FindingHierarchySkip,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("heading level jumps from %d to %d", prevLevel, h.Level),
				Line:     h.Line,
			})
		}
		prevLevel = h.Level
	}

	for _, h := range h2s {
		if len(strings.Fields(h.Text)) > v.cfg.MaxH2Words {
			res.Add(domain.Finding{
				Type:     domain.FindingLongHeading,
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf("heading %q exceeds %d words",
					truncate(h.Text, 50), v.cfg.MaxH2Words),
				Line: h.Line,
			})
		}
	}
}

// truncate shortens s to at most n runes for display.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
