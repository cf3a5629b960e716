package buffer

import (
	"fmt"

	"github.com/scribe-edit/scribe/internal/textline"
)

// The Apply* primitives perform raw text mutation and nothing else: no
// undo recording, no flag writes, no events. They exist for the undo
// commands to replay through; callers edit via the public methods in
// document.go. Out-of-range positions panic.

// ApplyInsertText splices text into a line at col.
func (d *Document) ApplyInsertText(line, col int, text string) {
	tl := d.Line(line)
	runes := []rune(tl.Text())
	if col < 0 || col > len(runes) {
		panic(fmt.Sprintf("buffer: insert col %d out of range [0,%d]", col, len(runes)))
	}
	tl.SetText(string(runes[:col]) + text + string(runes[col:]))
}

// ApplyRemoveText removes length runes from a line starting at col.
func (d *Document) ApplyRemoveText(line, col, length int) {
	tl := d.Line(line)
	runes := []rune(tl.Text())
	if col < 0 || length < 0 || col+length > len(runes) {
		panic(fmt.Sprintf("buffer: remove range [%d,%d) out of range [0,%d]", col, col+length, len(runes)))
	}
	tl.SetText(string(runes[:col]) + string(runes[col+length:]))
}

// ApplyWrapLine splits a line at col. When newLine is true the
// remainder becomes a fresh line below; otherwise it is prepended to
// the existing next line.
func (d *Document) ApplyWrapLine(line, col int, newLine bool) {
	tl := d.Line(line)
	runes := []rune(tl.Text())
	if col < 0 || col > len(runes) {
		panic(fmt.Sprintf("buffer: wrap col %d out of range [0,%d]", col, len(runes)))
	}

	remainder := string(runes[col:])
	tl.SetText(string(runes[:col]))

	if newLine {
		d.insertLineAt(line+1, textline.New(remainder))
	} else {
		next := d.Line(line + 1)
		next.SetText(remainder + next.Text())
	}
}

// ApplyUnwrapLine merges the next line into this one. When removeLine
// is true the whole next line is appended and removed; otherwise its
// first length runes move up.
func (d *Document) ApplyUnwrapLine(line int, removeLine bool, length int) {
	tl := d.Line(line)
	next := d.Line(line + 1)

	if removeLine {
		tl.SetText(tl.Text() + next.Text())
		d.removeLineAt(line + 1)
		return
	}

	runes := []rune(next.Text())
	if length < 0 || length > len(runes) {
		panic(fmt.Sprintf("buffer: unwrap length %d out of range [0,%d]", length, len(runes)))
	}
	tl.SetText(tl.Text() + string(runes[:length]))
	next.SetText(string(runes[length:]))
}

// ApplyInsertLine inserts a new line at the given number.
func (d *Document) ApplyInsertLine(line int, text string) {
	if line < 0 || line > len(d.lines) {
		panic(fmt.Sprintf("buffer: insert line %d out of range [0,%d]", line, len(d.lines)))
	}
	d.insertLineAt(line, textline.New(text))
}

// ApplyRemoveLine deletes a line. A document always keeps at least one
// line.
func (d *Document) ApplyRemoveLine(line int) {
	d.Line(line) // bounds check
	if len(d.lines) == 1 {
		panic("buffer: cannot remove the last line")
	}
	d.removeLineAt(line)
}

func (d *Document) insertLineAt(line int, tl *textline.TextLine) {
	d.lines = append(d.lines, nil)
	copy(d.lines[line+1:], d.lines[line:])
	d.lines[line] = tl
}

func (d *Document) removeLineAt(line int) {
	d.lines = append(d.lines[:line], d.lines[line+1:]...)
}
