package validate

import (
	"fmt"
	"unicode/utf8"

	"github.com/eykd/contentcheck/internal/domain"
	"github.com/eykd/contentcheck/internal/frontmatter"
)

// checkFrontmatter applies the metadata rules. An absent block yields a
// single error and skips every other frontmatter check; an empty block
// is deliberately treated the same way, matching the legacy pipeline.
func (v *Validator) checkFrontmatter(fields frontmatter.Fields, hasFM bool, block string, res *domain.ValidationResult) {
	if !hasFM || len(fields) == 0 {
		res.Add(domain.Finding{
			Type:     domain.FindingMissingFrontmatter,
			Severity: domain.SeverityError,
			Message:  "frontmatter block is required",
		})
		return
	}

	for _, key := range v.cfg.RequiredFields {
		val, present := fields[key]
		if !present || val.Empty() {
			res.Add(domain.Finding{
				Type:     domain.FindingMissingField,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("missing required frontmatter field %q", key),
			})
		}
	}

	if desc, ok := fields["description"]; ok && !desc.IsList {
		if n := utf8.RuneCountInString(desc.Scalar); n > v.cfg.MaxDescriptionLength {
			res.Add(domain.Finding{
				Type:     domain.FindingLongDescription,
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf("description is %d characters; keep it at or under %d for search snippets",
					n, v.cfg.MaxDescriptionLength),
			})
		}
	}

	if tags, ok := fields["tags"]; ok {
		switch {
		case !tags.IsList:
			res.Add(domain.Finding{
				Type:     domain.FindingTagCount,
				Severity: domain.SeverityWarning,
				Message:  "tags must be a list",
			})
		case len(tags.List) < v.cfg.MinTags || len(tags.List) > v.cfg.MaxTags:
			res.Add(domain.Finding{
				Type:     domain.FindingTagCount,
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf("%d tags; between %d and %d recommended",
					len(tags.List), v.cfg.MinTags, v.cfg.MaxTags),
			})
		}
	}

	if err := frontmatter.CheckYAML(block); err != nil {
		res.Add(domain.Finding{
			Type:     domain.FindingMalformedYAML,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("frontmatter is not valid YAML: %v", err),
		})
	}
}
