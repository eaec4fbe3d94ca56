// Package fs provides filesystem and git adapters that implement the
// validator and selector interfaces.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// OSContentReader implements validate.ContentReader using os.ReadFile.
type OSContentReader struct{}

// ReadFileImpl reads the full content of a file.
func (r *OSContentReader) ReadFileImpl(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadFile delegates to ReadFileImpl.
func (r *OSContentReader) ReadFile(ctx context.Context, path string) (string, error) {
	return r.ReadFileImpl(ctx, path)
}

// OSCorpusWalker implements selector.CorpusWalker using filepath.WalkDir.
type OSCorpusWalker struct{}

// WalkImpl enumerates files with a recognized extension under each
// root, in directory-traversal order. Missing roots are skipped.
func (w *OSCorpusWalker) WalkImpl(ctx context.Context, roots, exts []string) ([]string, error) {
	var files []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if d.IsDir() {
				return nil
			}
			for _, ext := range exts {
				if filepath.Ext(path) == ext {
					files = append(files, path)
					break
				}
			}
			return nil
		})
		if errors.Is(err, iofs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
	}
	return files, nil
}

// Walk delegates to WalkImpl.
func (w *OSCorpusWalker) Walk(ctx context.Context, roots, exts []string) ([]string, error) {
	return w.WalkImpl(ctx, roots, exts)
}

// GitCLI implements selector.GitClient by shelling out to the git
// binary.
type GitCLI struct{}

// ChangedFilesImpl lists files changed in the working tree: staged
// changes when staged is true, unstaged otherwise.
func (g *GitCLI) ChangedFilesImpl(ctx context.Context, staged bool) ([]string, error) {
	args := []string{"diff", "--name-only"}
	if staged {
		args = append(args, "--cached")
	}
	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("running git %s: %w", strings.Join(args, " "), err)
	}

	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// ChangedFiles delegates to ChangedFilesImpl.
func (g *GitCLI) ChangedFiles(ctx context.Context, staged bool) ([]string, error) {
	return g.ChangedFilesImpl(ctx, staged)
}
