// Package watch reports external on-disk changes to open files, so the
// owning editor can warn before overwriting or reload. It watches the
// file's directory rather than the file itself: editors that save via
// rename would otherwise silently detach the watch.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/scribe-edit/scribe/internal/event"
	"github.com/scribe-edit/scribe/internal/logger"
)

// Watcher dispatches TypeFileChangedOnDisk events for watched files.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events *event.Manager

	mu      sync.Mutex
	watched map[string]struct{} // absolute file paths
	dirs    map[string]int      // watched directories, refcounted

	done chan struct{}
}

// New creates a watcher dispatching on events. Returns an error when
// the platform watcher cannot be created; callers are expected to
// degrade gracefully and continue without change detection.
func New(events *event.Manager) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	w := &Watcher{
		fsw:     fsw,
		events:  events,
		watched: make(map[string]struct{}),
		dirs:    make(map[string]int),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch starts reporting changes to the given file.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watched[abs]; ok {
		return nil
	}
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %q: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.watched[abs] = struct{}{}
	logger.DebugTagf("watch", "watching %s", abs)
	return nil
}

// Unwatch stops reporting changes to the given file.
func (w *Watcher) Unwatch(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watched[abs]; !ok {
		return
	}
	delete(w.watched, abs)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		_ = w.fsw.Remove(dir)
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warnf("file watcher error: %v", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}

	w.mu.Lock()
	_, ok := w.watched[abs]
	w.mu.Unlock()
	if !ok {
		return
	}

	switch {
	case ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create):
		logger.DebugTagf("watch", "%s changed on disk", abs)
		w.events.Dispatch(event.TypeFileChangedOnDisk, event.FileChangedOnDiskData{FilePath: abs})
	case ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename):
		logger.DebugTagf("watch", "%s removed on disk", abs)
		w.events.Dispatch(event.TypeFileChangedOnDisk, event.FileChangedOnDiskData{FilePath: abs, Removed: true})
	}
}
