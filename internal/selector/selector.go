// Package selector resolves the set of files a validation run covers:
// an explicit path, files changed in version control, or a full corpus
// scan.
package selector

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// CorpusWalker abstracts enumerating content files under the configured
// roots.
type CorpusWalker interface {
	Walk(ctx context.Context, roots, exts []string) ([]string, error)
}

// GitClient abstracts querying version control for changed files.
type GitClient interface {
	ChangedFiles(ctx context.Context, staged bool) ([]string, error)
}

// Selector produces the ordered, de-duplicated list of files to
// validate. Operational notices (not findings) go to the notices
// writer, typically stderr.
type Selector struct {
	walker  CorpusWalker
	git     GitClient
	notices io.Writer
	roots   []string
	exts    []string
}

// New creates a Selector over the given collaborators, content roots,
// and recognized extensions.
func New(walker CorpusWalker, git GitClient, notices io.Writer, roots, exts []string) *Selector {
	return &Selector{walker: walker, git: git, notices: notices, roots: roots, exts: exts}
}

// All enumerates every recognized file under the content roots.
func (s *Selector) All(ctx context.Context) ([]string, error) {
	files, err := s.walker.Walk(ctx, s.roots, s.exts)
	if err != nil {
		return nil, err
	}
	return dedupe(files), nil
}

// Changed resolves files changed in version control: staged changes
// first, unstaged as fallback, filtered to content files. A failed git
// query degrades to a full scan with a console notice; it is an
// operational condition, not a content issue.
func (s *Selector) Changed(ctx context.Context) ([]string, error) {
	files, err := s.git.ChangedFiles(ctx, true)
	if err != nil {
		fmt.Fprintf(s.notices, "contentcheck: git query failed (%v); scanning full corpus\n", err)
		return s.All(ctx)
	}
	if len(files) == 0 {
		files, err = s.git.ChangedFiles(ctx, false)
		if err != nil {
			fmt.Fprintf(s.notices, "contentcheck: git query failed (%v); scanning full corpus\n", err)
			return s.All(ctx)
		}
	}

	var matched []string
	for _, f := range files {
		if s.isContentFile(f) {
			matched = append(matched, f)
		}
	}
	return dedupe(matched), nil
}

// isContentFile reports whether a path lives under a content root and
// carries a recognized extension.
func (s *Selector) isContentFile(path string) bool {
	ext := filepath.Ext(path)
	extOK := false
	for _, e := range s.exts {
		if e == ext {
			extOK = true
			break
		}
	}
	if !extOK {
		return false
	}

	slashed := filepath.ToSlash(path)
	for _, root := range s.roots {
		prefix := filepath.ToSlash(root)
		if slashed == prefix || strings.HasPrefix(slashed, prefix+"/") {
			return true
		}
	}
	return false
}

// dedupe removes repeated paths while preserving first-seen order.
func dedupe(files []string) []string {
	seen := make(map[string]bool, len(files))
	out := make([]string, 0, len(files))
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
