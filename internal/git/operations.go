package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotInRevision indicates a path that does not exist at the requested revision.
var ErrNotInRevision = errors.New("path not present in revision")

// Operations defines the interface for git operations.
// This allows mocking git commands in tests.
type Operations interface {
	// GetCurrentBranch returns the current branch name.
	// For detached HEAD, returns "detached-{short-hash}".
	// Returns "unknown" if all git commands fail.
	GetCurrentBranch(projectPath string) string

	// FindAncestorBranch finds the ancestor branch (main or master).
	// Returns empty string if no ancestor found.
	FindAncestorBranch(projectPath, currentBranch string) string

	// GetWorktreeRoot returns the git worktree root path.
	// Falls back to projectPath if not a git repository.
	GetWorktreeRoot(projectPath string) string

	// ShowFile returns the content of filePath at revision rev.
	// Returns ErrNotInRevision when the file does not exist at rev.
	ShowFile(projectPath, rev, filePath string) (string, error)
}

// gitOps is the real implementation using exec.Command.
type gitOps struct{}

// NewOperations returns the default git operations implementation.
func NewOperations() Operations {
	return &gitOps{}
}

func (g *gitOps) GetCurrentBranch(projectPath string) string {
	cmd := exec.Command("git", "branch", "--show-current")
	cmd.Dir = projectPath
	output, err := cmd.Output()
	if err != nil || len(strings.TrimSpace(string(output))) == 0 {
		// Might be detached HEAD
		cmd = exec.Command("git", "rev-parse", "--short", "HEAD")
		cmd.Dir = projectPath
		output, err = cmd.Output()
		if err != nil {
			return "unknown"
		}
		return "detached-" + strings.TrimSpace(string(output))
	}
	return strings.TrimSpace(string(output))
}

func (g *gitOps) FindAncestorBranch(projectPath, currentBranch string) string {
	for _, candidate := range []string{"main", "master"} {
		cmd := exec.Command("git", "merge-base", currentBranch, candidate)
		cmd.Dir = projectPath
		if output, err := cmd.Output(); err == nil && len(output) > 0 {
			return candidate
		}
	}
	return ""
}

func (g *gitOps) GetWorktreeRoot(projectPath string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = projectPath
	output, err := cmd.Output()
	if err != nil {
		return projectPath
	}
	return strings.TrimSpace(string(output))
}

func (g *gitOps) ShowFile(projectPath, rev, filePath string) (string, error) {
	// "rev:./path" resolves relative to the command's working directory.
	rel := filepath.ToSlash(filePath)
	if !filepath.IsAbs(filePath) {
		rel = "./" + strings.TrimPrefix(rel, "./")
	} else {
		r, err := filepath.Rel(projectPath, filePath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", filePath, err)
		}
		rel = "./" + filepath.ToSlash(r)
	}

	var stderr bytes.Buffer
	cmd := exec.Command("git", "show", rev+":"+rel)
	cmd.Dir = projectPath
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "does not exist in") || strings.Contains(msg, "exists on disk, but not in") {
			return "", fmt.Errorf("%w: %s at %s", ErrNotInRevision, filePath, rev)
		}
		return "", fmt.Errorf("git show %s:%s failed: %s", rev, rel, msg)
	}
	return string(output), nil
}

// Package-level variable for dependency injection.
// Tests can replace this with a mock implementation.
var defaultGitOps Operations = NewOperations()

// Default returns the package-level operations implementation.
func Default() Operations {
	return defaultGitOps
}
