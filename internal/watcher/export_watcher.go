package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/mvp-joe/export-diff/internal/analyzer"
)

// ExportWatcher re-analyzes watched files whenever they settle after a change
// and reports export changes against the last version that parsed.
type ExportWatcher struct {
	files      FileWatcher
	baselines  map[string]string
	baselineMu sync.Mutex
}

// NewExportWatcher records the current content of every file as its baseline
// and prepares to watch them. Missing files start from empty source.
func NewExportWatcher(files []string, debounce time.Duration) (*ExportWatcher, error) {
	baselines := make(map[string]string, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		content, err := readSource(abs)
		if err != nil {
			return nil, err
		}
		baselines[abs] = content
	}

	fw, err := NewFileWatcher(files, debounce)
	if err != nil {
		return nil, err
	}

	return &ExportWatcher{
		files:     fw,
		baselines: baselines,
	}, nil
}

// Start begins watching. callback runs on the watcher goroutine once per
// changed file, only when exports changed or the new content failed to parse.
func (w *ExportWatcher) Start(ctx context.Context, callback func(Event)) error {
	return w.files.Start(ctx, func(paths []string) {
		sort.Strings(paths)
		for _, path := range paths {
			if ev, ok := w.analyze(path); ok {
				callback(ev)
			}
		}
	})
}

// Stop stops watching.
func (w *ExportWatcher) Stop() error {
	return w.files.Stop()
}

// analyze diffs path against its baseline and advances the baseline when the
// new content parses.
func (w *ExportWatcher) analyze(path string) (Event, bool) {
	current, err := readSource(path)
	if err != nil {
		return Event{Path: path, Err: err}, true
	}

	w.baselineMu.Lock()
	previous := w.baselines[path]
	w.baselineMu.Unlock()

	changes, err := analyzer.AnalyzeDiff(previous, current)
	if err != nil {
		return Event{Path: path, Err: err}, true
	}

	w.baselineMu.Lock()
	w.baselines[path] = current
	w.baselineMu.Unlock()

	if len(changes) == 0 {
		return Event{}, false
	}
	return Event{Path: path, Changes: changes}, true
}

// readSource reads a file, treating a missing file as empty source.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
