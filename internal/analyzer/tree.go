package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mvp-joe/export-diff/internal/diff"
)

// TreeOptions controls AnalyzeTree.
type TreeOptions struct {
	Include []string
	Ignore  []string

	// OnStart is called once with the number of file pairs to compare.
	OnStart func(total int)
	// OnFile is called after each file pair is compared.
	OnFile func(path string)
}

// FileResult holds the changes for one file path.
type FileResult struct {
	Path    string              `json:"path" yaml:"path"`
	Changes []diff.ChangeRecord `json:"changes" yaml:"changes"`
}

// AnalyzeTree diffs every matching file of oldDir against the file with the
// same relative path in newDir. A file present on one side only is compared
// against empty source. Files without changes are omitted.
func AnalyzeTree(ctx context.Context, oldDir, newDir string, opts TreeOptions) ([]FileResult, error) {
	paths, err := pairedFiles(oldDir, newDir, opts.Include, opts.Ignore)
	if err != nil {
		return nil, err
	}

	if opts.OnStart != nil {
		opts.OnStart(len(paths))
	}

	results := []FileResult{}
	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		oldCode, err := readOptional(filepath.Join(oldDir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}
		newCode, err := readOptional(filepath.Join(newDir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}

		changes, err := AnalyzeDiff(oldCode, newCode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rel, err)
		}

		if len(changes) > 0 {
			results = append(results, FileResult{Path: rel, Changes: changes})
		}

		if opts.OnFile != nil {
			opts.OnFile(rel)
		}
	}

	return results, nil
}

// pairedFiles returns the union of matching relative paths under both roots.
func pairedFiles(oldDir, newDir string, include, ignore []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, root := range []string{oldDir, newDir} {
		fd, err := NewFileDiscovery(root, include, ignore)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		files, err := fd.DiscoverFiles()
		if err != nil {
			return nil, fmt.Errorf("failed to discover files in %s: %w", root, err)
		}
		for _, f := range files {
			seen[f] = struct{}{}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}

// readOptional reads a file, returning empty content if it does not exist.
func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
