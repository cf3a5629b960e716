// Package textline implements the per-line text storage used by the
// document buffer: the line's characters, its syntax attribute runs and
// the modified/saved-on-disk state the undo layer maintains.
package textline

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TextLine owns one line of text. Columns are rune indices, not byte
// offsets. A TextLine belongs to exactly one document; undo commands
// refer to it by line number and never hold a TextLine directly.
type TextLine struct {
	text       []rune
	attributes []Attribute

	// Maintained by the undo layer, see internal/undo.
	modified    bool
	savedOnDisk bool
}

// New creates a line holding the given text.
func New(text string) *TextLine {
	return &TextLine{text: []rune(text)}
}

// Text returns the line content as a string.
func (l *TextLine) Text() string {
	return string(l.text)
}

// Length returns the number of runes in the line.
func (l *TextLine) Length() int {
	return len(l.text)
}

// SetText replaces the line content. Attribute runs refer to the old
// content and are dropped.
func (l *TextLine) SetText(text string) {
	l.text = []rune(text)
	l.attributes = nil
}

// String returns a substring by rune offsets, clamped to the line.
func (l *TextLine) String(offset, length int) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.text) {
		offset = len(l.text)
	}
	end := offset + length
	if length < 0 || end > len(l.text) {
		end = len(l.text)
	}
	return string(l.text[offset:end])
}

// FirstChar returns the position of the first non-whitespace character,
// or -1 for an empty or all-whitespace line.
func (l *TextLine) FirstChar() int {
	return l.NextNonSpaceChar(0)
}

// LastChar returns the position of the last non-whitespace character,
// or -1 for an empty or all-whitespace line.
func (l *TextLine) LastChar() int {
	return l.PreviousNonSpaceChar(len(l.text) - 1)
}

// NextNonSpaceChar scans forward from pos (inclusive) for the first
// non-whitespace character. Returns -1 if none is found.
func (l *TextLine) NextNonSpaceChar(pos int) int {
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < len(l.text); i++ {
		if !unicode.IsSpace(l.text[i]) {
			return i
		}
	}
	return -1
}

// PreviousNonSpaceChar scans backward from pos (inclusive) for the first
// non-whitespace character. Returns -1 if none is found.
func (l *TextLine) PreviousNonSpaceChar(pos int) int {
	if pos >= len(l.text) {
		pos = len(l.text) - 1
	}
	for i := pos; i >= 0; i-- {
		if !unicode.IsSpace(l.text[i]) {
			return i
		}
	}
	return -1
}

// LeadingWhitespace returns the whitespace prefix of the line. For an
// all-whitespace line this is the whole line.
func (l *TextLine) LeadingWhitespace() string {
	if l.FirstChar() < 0 {
		return l.String(0, len(l.text))
	}
	return l.String(0, l.FirstChar())
}

// IndentDepth returns the indentation depth in columns, expanding tabs
// to the next multiple of tabWidth. Scanning stops at the first
// non-whitespace character.
func (l *TextLine) IndentDepth(tabWidth int) int {
	mustPositiveTabWidth(tabWidth)

	d := 0
	for _, r := range l.text {
		if !unicode.IsSpace(r) {
			return d
		}
		if r == '\t' {
			d += tabWidth - (d % tabWidth)
		} else {
			d++
		}
	}
	return d
}

// MatchesAt reports whether match occurs literally at the given column.
// Out-of-range columns return false, never panic.
func (l *TextLine) MatchesAt(column int, match string) bool {
	if column < 0 {
		return false
	}

	m := []rune(match)
	if column+len(m) > len(l.text) {
		return false
	}

	for i, r := range m {
		if l.text[column+i] != r {
			return false
		}
	}
	return true
}

// ToVirtualColumn maps a rune offset to the visual column it occupies
// after tab expansion. A column past the end of the line maps 1:1 beyond
// the virtual length.
func (l *TextLine) ToVirtualColumn(column, tabWidth int) int {
	mustPositiveTabWidth(tabWidth)
	if column < 0 {
		return 0
	}

	x := 0
	zmax := min(column, len(l.text))
	for z := 0; z < zmax; z++ {
		if l.text[z] == '\t' {
			x += tabWidth - (x % tabWidth)
		} else {
			x++
		}
	}
	return x + column - zmax
}

// FromVirtualColumn maps a visual column back to the rune offset whose
// expansion covers it. Inverse of ToVirtualColumn for columns that land
// exactly on a character boundary.
func (l *TextLine) FromVirtualColumn(column, tabWidth int) int {
	mustPositiveTabWidth(tabWidth)
	if column < 0 {
		return 0
	}

	zmax := min(len(l.text), column)
	x := 0
	z := 0
	for ; z < zmax; z++ {
		diff := 1
		if l.text[z] == '\t' {
			diff = tabWidth - (x % tabWidth)
		}
		if x+diff > column {
			break
		}
		x += diff
	}
	return z + max(column-x, 0)
}

// VirtualLength returns the visual width of the whole line after tab
// expansion.
func (l *TextLine) VirtualLength(tabWidth int) int {
	return l.ToVirtualColumn(len(l.text), tabWidth)
}

// Width returns the terminal cell width of the line, accounting for
// wide and combining runes. Tabs count one cell here; callers that need
// tab expansion want VirtualLength instead.
func (l *TextLine) Width() int {
	return runewidth.StringWidth(string(l.text))
}

func mustPositiveTabWidth(tabWidth int) {
	if tabWidth <= 0 {
		panic("textline: tabWidth must be > 0")
	}
}
