// Package domain holds the core types for content validation: findings,
// per-document results, headings, and summary counts.
package domain

// FindingSeverity indicates how severe a finding is.
type FindingSeverity string

const (
	// SeverityError indicates a finding that blocks publication.
	SeverityError FindingSeverity = "error"
	// SeverityWarning indicates a finding that should be fixed but does
	// not block publication.
	SeverityWarning FindingSeverity = "warning"
	// SeverityInfo indicates an advisory finding.
	SeverityInfo FindingSeverity = "info"
)

// Finding type constants identify the kind of issue found.
const (
	FindingMissingTitle        = "missing_title"
	FindingDuplicateTitle      = "duplicate_title"
	FindingThinStructure       = "thin_structure"
	FindingHierarchySkip       = "hierarchy_skip"
	FindingLongHeading         = "long_heading"
	FindingMissingFrontmatter  = "missing_frontmatter"
	FindingMissingField        = "missing_field"
	FindingLongDescription     = "long_description"
	FindingTagCount            = "tag_count"
	FindingMalformedYAML       = "malformed_yaml"
	FindingInvalidFilename     = "invalid_filename"
	FindingUnescapedAngle      = "unescaped_angle"
	FindingUnescapedBraces     = "unescaped_braces"
	FindingPlaceholderLanguage = "placeholder_language"
	FindingMissingLanguage     = "missing_language"
	FindingShortRead           = "short_read"
	FindingLongRead            = "long_read"
	FindingUnreadableFile      = "unreadable_file"
)

// Finding represents a single validation issue discovered in a document.
// Line is 1-based; zero means the finding has no line position.
type Finding struct {
	Type     string          `json:"type"`
	Severity FindingSeverity `json:"severity"`
	Message  string          `json:"message"`
	Path     string          `json:"path"`
	Line     int             `json:"line,omitempty"`
}

// ValidationResult holds all findings for one document, bucketed by
// severity. Within a bucket, findings appear in detection order.
type ValidationResult struct {
	Path     string    `json:"path"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Info     []Finding `json:"info"`
}

// NewValidationResult creates an empty result for the given file path.
func NewValidationResult(path string) *ValidationResult {
	return &ValidationResult{Path: path}
}

// Add appends a finding to the bucket matching its severity, stamping
// the result's path onto the finding.
func (r *ValidationResult) Add(f Finding) {
	f.Path = r.Path
	switch f.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, f)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f)
	case SeverityInfo:
		r.Info = append(r.Info, f)
	}
}

// Clean reports whether the result has no errors and no warnings.
// Info findings do not affect cleanliness.
func (r *ValidationResult) Clean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// Summary holds the aggregate counts over a validation run.
type Summary struct {
	CleanFiles      int `json:"clean_files"`
	FilesWithIssues int `json:"files_with_issues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Info            int `json:"info"`
}
