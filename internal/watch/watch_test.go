package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scribe-edit/scribe/internal/event"
	"github.com/scribe-edit/scribe/internal/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForChange(t *testing.T, ch <-chan event.FileChangedOnDiskData) event.FileChangedOnDiskData {
	t.Helper()
	select {
	case data := <-ch:
		return data
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
		return event.FileChangedOnDiskData{}
	}
}

func newTestWatcher(t *testing.T) (*watch.Watcher, <-chan event.FileChangedOnDiskData) {
	t.Helper()
	events := event.NewManager()
	ch := make(chan event.FileChangedOnDiskData, 16)
	events.Subscribe(event.TypeFileChangedOnDisk, func(e event.Event) bool {
		ch <- e.Data.(event.FileChangedOnDiskData)
		return false
	})

	w, err := watch.New(events)
	if err != nil {
		t.Skipf("platform watcher unavailable: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w, ch
}

func TestWatchReportsWrite(t *testing.T) {
	w, ch := newTestWatcher(t)

	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1\n"), 0o644))
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.WriteFile(path, []byte("v2\n"), 0o644))

	data := waitForChange(t, ch)
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, data.FilePath)
	assert.False(t, data.Removed)
}

func TestWatchReportsRemove(t *testing.T) {
	w, ch := newTestWatcher(t)

	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1\n"), 0o644))
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.Remove(path))

	data := waitForChange(t, ch)
	assert.True(t, data.Removed)
}

func TestWatchSurvivesSaveByRename(t *testing.T) {
	w, ch := newTestWatcher(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1\n"), 0o644))
	require.NoError(t, w.Watch(path))

	// atomic-save pattern: write a sibling, then rename over the target
	tmp := filepath.Join(dir, "f.txt.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("v2\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	data := waitForChange(t, ch)
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, data.FilePath)
}

func TestWatchIgnoresUnrelatedFiles(t *testing.T) {
	w, ch := newTestWatcher(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1\n"), 0o644))
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.WriteFile(other, []byte("noise\n"), 0o644))

	select {
	case data := <-ch:
		t.Fatalf("unexpected event for %s", data.FilePath)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestUnwatchStopsEvents(t *testing.T) {
	w, ch := newTestWatcher(t)

	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1\n"), 0o644))
	require.NoError(t, w.Watch(path))
	w.Unwatch(path)

	require.NoError(t, os.WriteFile(path, []byte("v2\n"), 0o644))

	select {
	case data := <-ch:
		t.Fatalf("unexpected event for %s", data.FilePath)
	case <-time.After(500 * time.Millisecond):
	}
}
