package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ParsedFilename represents a parsed locale-tagged content filename of
// the form base.<locale>.<ext>, e.g. "intro-to-prompts.en.md".
type ParsedFilename struct {
	Base   string
	Locale string
	Ext    string
}

// ErrInvalidFilename is returned when a filename doesn't follow the
// base.<locale>.<ext> convention.
var ErrInvalidFilename = errors.New("invalid content filename")

var localeRegex = regexp.MustCompile(`^[a-z]{2,3}$`)

// ParseFilename parses a content filename into its components. The
// segment before the extension must be a two- or three-letter lowercase
// locale tag; whether the tag and extension are recognized is decided
// by the caller against its configured sets.
func ParseFilename(filename string) (ParsedFilename, error) {
	parts := strings.Split(filename, ".")
	if len(parts) < 3 {
		return ParsedFilename{}, fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	ext := parts[len(parts)-1]
	locale := parts[len(parts)-2]
	base := strings.Join(parts[:len(parts)-2], ".")

	if base == "" || ext == "" || !localeRegex.MatchString(locale) {
		return ParsedFilename{}, fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	return ParsedFilename{Base: base, Locale: locale, Ext: "." + ext}, nil
}
