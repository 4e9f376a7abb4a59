package git

import "fmt"

// MockGitOps is a mock implementation of Operations for testing.
type MockGitOps struct {
	CurrentBranch  string
	AncestorBranch string
	WorktreeRoot   string

	// Files maps "rev:path" to file content.
	Files     map[string]string
	ShowError error
}

// NewMockGitOps creates a mock with sensible defaults.
func NewMockGitOps() *MockGitOps {
	return &MockGitOps{
		CurrentBranch:  "main",
		AncestorBranch: "",
		WorktreeRoot:   "/tmp/test-repo",
		Files:          map[string]string{},
	}
}

func (m *MockGitOps) GetCurrentBranch(projectPath string) string {
	return m.CurrentBranch
}

func (m *MockGitOps) FindAncestorBranch(projectPath, currentBranch string) string {
	return m.AncestorBranch
}

func (m *MockGitOps) GetWorktreeRoot(projectPath string) string {
	return m.WorktreeRoot
}

func (m *MockGitOps) ShowFile(projectPath, rev, filePath string) (string, error) {
	if m.ShowError != nil {
		return "", m.ShowError
	}
	content, ok := m.Files[rev+":"+filePath]
	if !ok {
		return "", fmt.Errorf("%w: %s at %s", ErrNotInRevision, filePath, rev)
	}
	return content, nil
}

// SetFile registers content for path at rev.
func (m *MockGitOps) SetFile(rev, filePath, content string) {
	m.Files[rev+":"+filePath] = content
}

// String returns a human-readable representation of the mock state.
func (m *MockGitOps) String() string {
	return fmt.Sprintf("MockGitOps{branch=%s, ancestor=%s, files=%d}",
		m.CurrentBranch, m.AncestorBranch, len(m.Files))
}
