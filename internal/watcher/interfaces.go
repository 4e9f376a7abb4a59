package watcher

import (
	"context"

	"github.com/mvp-joe/export-diff/internal/diff"
)

// FileWatcher monitors a fixed set of files with debouncing.
type FileWatcher interface {
	// Start begins watching, calling callback with debounced file changes.
	Start(ctx context.Context, callback func(files []string)) error

	// Stop stops the file watcher and cleans up resources.
	Stop() error
}

// Event reports the export changes of one file since its previous version.
type Event struct {
	Path    string
	Changes []diff.ChangeRecord
	Err     error
}
