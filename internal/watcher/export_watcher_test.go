package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mvp-joe/export-diff/internal/analyzer"
	"github.com/mvp-joe/export-diff/internal/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for ExportWatcher:
// - A save that changes an export reports it against the starting content
// - Consecutive saves are diffed against the previous save, not the start
// - A save that only changes formatting reports nothing
// - A save with a syntax error reports a parse error and keeps the old baseline
// - A watched file that does not exist yet starts from empty source

func startExportWatcher(t *testing.T, files ...string) <-chan Event {
	t.Helper()

	w, err := NewExportWatcher(files, testDebounce)
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })

	events := make(chan Event, 10)
	require.NoError(t, w.Start(context.Background(), func(ev Event) {
		events <- ev
	}))
	time.Sleep(100 * time.Millisecond)
	return events
}

func nextEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("no watch event before timeout")
		return Event{}
	}
}

func TestExportWatcher_ReportsChangesAgainstPreviousVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.ts")
	require.NoError(t, os.WriteFile(path, []byte("export const a = 1;\n"), 0644))

	events := startExportWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("export const a = 2;\n"), 0644))
	ev := nextEvent(t, events)
	require.NoError(t, ev.Err)
	assert.Equal(t, path, ev.Path)
	assert.Equal(t, []diff.ChangeRecord{{Name: "a", Change: diff.Modified}}, ev.Changes)

	require.NoError(t, os.WriteFile(path, []byte("export const a = 2;\nexport const b = 3;\n"), 0644))
	ev = nextEvent(t, events)
	require.NoError(t, ev.Err)
	assert.Equal(t, []diff.ChangeRecord{{Name: "b", Change: diff.Added}}, ev.Changes)
}

func TestExportWatcher_FormattingOnlySaveIsSilent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.ts")
	require.NoError(t, os.WriteFile(path, []byte("export const a = 1;\n"), 0644))

	events := startExportWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("export   const a =\n  1; // same\n"), 0644))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(600 * time.Millisecond):
	}
}

func TestExportWatcher_SyntaxErrorKeepsBaseline(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.ts")
	require.NoError(t, os.WriteFile(path, []byte("export const a = 1;\n"), 0644))

	events := startExportWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("export const a = ;\n"), 0644))
	ev := nextEvent(t, events)
	require.Error(t, ev.Err)
	assert.ErrorIs(t, ev.Err, analyzer.ErrParse)

	require.NoError(t, os.WriteFile(path, []byte("export const a = 1;\nexport function f() {}\n"), 0644))
	ev = nextEvent(t, events)
	require.NoError(t, ev.Err)
	assert.Equal(t, []diff.ChangeRecord{{Name: "f", Change: diff.Added}}, ev.Changes)
}

func TestExportWatcher_MissingFileStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "later.ts")
	events := startExportWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("export class Widget {}\n"), 0644))
	ev := nextEvent(t, events)
	require.NoError(t, ev.Err)
	assert.Equal(t, []diff.ChangeRecord{{Name: "Widget", Change: diff.Added}}, ev.Changes)
}
