package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eykd/contentcheck/internal/domain"
)

// anglePattern matches a < immediately followed (ignoring whitespace)
// by a digit or $, which downstream renderers misread as an opening
// markup tag.
var anglePattern = regexp.MustCompile(`<\s*[0-9$]`)

// bracePattern matches a {...} span, which renderers treat as embedded
// expression syntax unless fenced or inside inline code.
var bracePattern = regexp.MustCompile(`\{[^{}]*\}`)

// inlineCodePattern matches inline code spans so they can be excluded
// from the brace scan.
var inlineCodePattern = regexp.MustCompile("`[^`]*`")

// checkSyntax scans non-code lines for markup-breaking patterns. Fenced
// code block state is tracked locally and independently of the other
// scans.
func (v *Validator) checkSyntax(lines []string, offset int, res *domain.ValidationResult) {
	inCodeBlock := false

	for i, line := range lines {
		if isFence(line) {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			continue
		}

		if anglePattern.MatchString(line) {
			res.Add(domain.Finding{
				Type:     domain.FindingUnescapedAngle,
				Severity: domain.SeverityError,
				Message:  "unescaped < before a digit or $; escape it or move it into a code span",
				Line:     offset + i + 1,
			})
		}

		stripped := inlineCodePattern.ReplaceAllString(line, "")
		if match := bracePattern.FindString(stripped); match != "" {
			res.Add(domain.Finding{
				Type:     domain.FindingUnescapedBraces,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("unescaped braces %q outside inline code", match),
				Line:     offset + i + 1,
			})
		}
	}
}

// checkCodeBlocks inspects the language tag on each opening fence.
func (v *Validator) checkCodeBlocks(lines []string, offset int, res *domain.ValidationResult) {
	inCodeBlock := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "```") {
			continue
		}
		if inCodeBlock {
			inCodeBlock = false
			continue
		}
		inCodeBlock = true

		tag := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		switch {
		case strings.Contains(tag, "[") || strings.EqualFold(tag, "language"):
			res.Add(domain.Finding{
				Type:     domain.FindingPlaceholderLanguage,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("code fence has placeholder language tag %q", tag),
				Line:     offset + i + 1,
			})
		case tag == "":
			res.Add(domain.Finding{
				Type:     domain.FindingMissingLanguage,
				Severity: domain.SeverityInfo,
				Message:  "code fence has no language tag; syntax highlighting will be disabled",
				Line:     offset + i + 1,
			})
		}
	}
}
