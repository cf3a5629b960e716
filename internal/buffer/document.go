// Package buffer implements the document: the ordered collection of
// text lines, the edit operations callers use, and the coupling to the
// undo layer that keeps per-line modification state correct across
// edit, undo, redo and save.
package buffer

import (
	"fmt"
	"strings"

	"github.com/scribe-edit/scribe/internal/event"
	"github.com/scribe-edit/scribe/internal/logger"
	"github.com/scribe-edit/scribe/internal/textline"
	"github.com/scribe-edit/scribe/internal/undo"
)

// Document owns a file's lines. A document always holds at least one
// line. All mutation goes through the public edit methods, which record
// an undo command before touching any text so the command can snapshot
// the pre-edit modification flags.
type Document struct {
	lines    []*textline.TextLine
	filePath string
	history  *undo.Manager
	events   *event.Manager
}

// New creates an empty document with one empty line. events may be nil.
func New(events *event.Manager) *Document {
	d := &Document{
		lines:  []*textline.TextLine{textline.New("")},
		events: events,
	}
	d.history = undo.NewManager(d, undo.DefaultMaxHistory)
	return d
}

// Line returns the line at the given number. An invalid number is a
// caller bug and panics; silently continuing would corrupt flag state.
func (d *Document) Line(line int) *textline.TextLine {
	if line < 0 || line >= len(d.lines) {
		panic(fmt.Sprintf("buffer: line %d out of range [0,%d)", line, len(d.lines)))
	}
	return d.lines[line]
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// FilePath returns the path the document was loaded from or saved to.
func (d *Document) FilePath() string {
	return d.filePath
}

// Text returns the whole document joined with newlines.
func (d *Document) Text() string {
	parts := make([]string, len(d.lines))
	for i, l := range d.lines {
		parts[i] = l.Text()
	}
	return strings.Join(parts, "\n")
}

// Modified reports whether any line changed since the last save.
func (d *Document) Modified() bool {
	for _, l := range d.lines {
		if l.MarkedAsModified() {
			return true
		}
	}
	return false
}

// History returns the document's undo manager.
func (d *Document) History() *undo.Manager {
	return d.history
}

// InsertText inserts text into one line at col. The text must not
// contain a newline; use WrapLine to split lines.
func (d *Document) InsertText(line, col int, text string) {
	if text == "" {
		return
	}
	if strings.ContainsRune(text, '\n') {
		panic("buffer: InsertText text must not contain newline")
	}

	c := undo.NewInsertText(d, line, col, text)
	c.Redo(d)
	d.history.Record(c)
	d.notifyModified(line)
}

// RemoveText removes length runes from a line starting at col.
func (d *Document) RemoveText(line, col, length int) {
	if length <= 0 {
		return
	}

	removed := d.Line(line).String(col, length)
	c := undo.NewRemoveText(d, line, col, removed)
	c.Redo(d)
	d.history.Record(c)
	d.notifyModified(line)
}

// WrapLine splits a line at col; the remainder becomes a new line below.
func (d *Document) WrapLine(line, col int) {
	c := undo.NewWrapLine(d, line, col, true)
	c.Redo(d)
	d.history.Record(c)
	d.notifyModified(line)
}

// UnwrapLine merges the next line into this one, removing it.
func (d *Document) UnwrapLine(line int) {
	c := undo.NewUnwrapLine(d, line, true)
	c.Redo(d)
	d.history.Record(c)
	d.notifyModified(line)
}

// InsertLine inserts a whole new line at the given number.
func (d *Document) InsertLine(line int, text string) {
	c := undo.NewInsertLine(line, text)
	c.Redo(d)
	d.history.Record(c)
	d.notifyModified(line)
}

// RemoveLine deletes a whole line.
func (d *Document) RemoveLine(line int) {
	c := undo.NewRemoveLine(d, line, d.Line(line).Text())
	c.Redo(d)
	d.history.Record(c)
	d.notifyModified(line)
}

// Undo reverts the most recent edit. Returns false when the history is
// empty.
func (d *Document) Undo() bool {
	c := d.history.Undo()
	if c == nil {
		return false
	}
	d.notifyModified(c.Line())
	return true
}

// Redo reapplies the most recently undone edit.
func (d *Document) Redo() bool {
	c := d.history.Redo()
	if c == nil {
		return false
	}
	d.notifyModified(c.Line())
	return true
}

func (d *Document) notifyModified(line int) {
	if d.events != nil {
		d.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Line: line})
	}
	logger.DebugTagf("buffer", "document modified at line %d", line)
}
