// Package config defines the validator configuration and its defaults.
// Values are discovered via viper (config file, environment, flags) and
// unmarshalled into Config; the literal thresholds here encode the
// publication conventions of the content corpus.
package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Config holds every tunable the validator reads. All thresholds have
// working defaults from Default; a config file only needs to override
// what differs.
type Config struct {
	// ContentRoots are the directories scanned for content files.
	ContentRoots []string `mapstructure:"content_roots"`
	// Extensions are the recognized content file extensions, with dot.
	Extensions []string `mapstructure:"extensions"`
	// Locales are the recognized locale tags for filename routing.
	Locales []string `mapstructure:"locales"`
	// RequiredFields are the frontmatter keys every document must set.
	RequiredFields []string `mapstructure:"required_fields"`

	// MaxDescriptionLength is the character limit before the SEO
	// warning fires. The boundary is strictly greater-than.
	MaxDescriptionLength int `mapstructure:"max_description_length"`
	// MinTags and MaxTags bound the recommended tag count.
	MinTags int `mapstructure:"min_tags"`
	MaxTags int `mapstructure:"max_tags"`
	// MinH2Count is the minimum level-2 headings before the thin
	// structure warning fires.
	MinH2Count int `mapstructure:"min_h2_count"`
	// MaxH2Words is the word limit for level-2 heading text.
	MaxH2Words int `mapstructure:"max_h2_words"`
	// WordsPerMinute converts word count to reading time.
	WordsPerMinute int `mapstructure:"words_per_minute"`
	// MinReadingMinutes and MaxReadingMinutes bound the advisory
	// reading-time range.
	MinReadingMinutes int `mapstructure:"min_reading_minutes"`
	MaxReadingMinutes int `mapstructure:"max_reading_minutes"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		ContentRoots:         []string{"content", "docs"},
		Extensions:           []string{".md", ".mdx"},
		Locales:              []string{"en", "es"},
		RequiredFields:       []string{"title", "description", "tags"},
		MaxDescriptionLength: 160,
		MinTags:              4,
		MaxTags:              8,
		MinH2Count:           3,
		MaxH2Words:           8,
		WordsPerMinute:       200,
		MinReadingMinutes:    2,
		MaxReadingMinutes:    20,
	}
}

// Validate checks the configuration for values that would make the
// validator misbehave: malformed locale tags, extensions without a
// leading dot, and non-positive thresholds.
func (c *Config) Validate() error {
	if len(c.ContentRoots) == 0 {
		return fmt.Errorf("content_roots must not be empty")
	}
	if len(c.Locales) == 0 {
		return fmt.Errorf("locales must not be empty")
	}
	for _, tag := range c.Locales {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("locale %q is not a well-formed language tag: %w", tag, err)
		}
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions must not be empty")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	positives := map[string]int{
		"max_description_length": c.MaxDescriptionLength,
		"min_tags":               c.MinTags,
		"max_tags":               c.MaxTags,
		"min_h2_count":           c.MinH2Count,
		"max_h2_words":           c.MaxH2Words,
		"words_per_minute":       c.WordsPerMinute,
		"min_reading_minutes":    c.MinReadingMinutes,
		"max_reading_minutes":    c.MaxReadingMinutes,
	}
	for name, v := range positives {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	if c.MinTags > c.MaxTags {
		return fmt.Errorf("min_tags (%d) must not exceed max_tags (%d)", c.MinTags, c.MaxTags)
	}
	return nil
}
