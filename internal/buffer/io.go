package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/scribe-edit/scribe/internal/event"
	"github.com/scribe-edit/scribe/internal/logger"
	"github.com/scribe-edit/scribe/internal/textline"
)

// Load reads a file into the document, replacing all content and
// clearing the undo history. Loading a missing file yields a single
// empty line, the convention for a new file. Fresh lines carry neither
// the modified nor the saved-on-disk flag.
func (d *Document) Load(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			d.lines = []*textline.TextLine{textline.New("")}
			d.filePath = filePath
			d.history.Clear()
			d.notifyLoaded(filePath)
			return nil
		}
		return fmt.Errorf("failed to open file %q: %w", filePath, err)
	}
	defer file.Close()

	var lines []*textline.TextLine
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, textline.New(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file %q: %w", filePath, err)
	}
	if len(lines) == 0 {
		lines = append(lines, textline.New(""))
	}

	d.lines = lines
	d.filePath = filePath
	d.history.Clear()
	d.notifyLoaded(filePath)
	return nil
}

// Save writes the document to filePath (or the stored path when empty),
// then reconciles the undo history with the new save state and marks
// every line saved-on-disk.
func (d *Document) Save(filePath string) error {
	path := d.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, []byte(d.Text()), 0644); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	d.filePath = path

	// Promote stale Modified flags in pending commands first, then sweep
	// the live lines. Order does not matter, the command flags and the
	// line flags are independent copies of the same state.
	d.history.MarkSavedOnDisk()
	for _, l := range d.lines {
		l.MarkAsSavedOnDisk(true)
	}

	logger.DebugTagf("buffer", "saved %d lines to %s", len(d.lines), path)
	if d.events != nil {
		d.events.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: path})
	}
	return nil
}

// SetText replaces the whole document content, clearing history. Used
// by callers that assemble content outside the edit primitives, e.g.
// tests and reload-from-disk.
func (d *Document) SetText(text string) {
	parts := strings.Split(text, "\n")
	lines := make([]*textline.TextLine, len(parts))
	for i, p := range parts {
		lines[i] = textline.New(p)
	}
	d.lines = lines
	d.history.Clear()
}

func (d *Document) notifyLoaded(filePath string) {
	logger.DebugTagf("buffer", "loaded %d lines from %s", len(d.lines), filePath)
	if d.events != nil {
		d.events.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath})
	}
}
