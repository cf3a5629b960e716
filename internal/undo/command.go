// Package undo implements the modification-tracking undo/redo commands
// for the document buffer. Each command snapshots, at construction time,
// the modified/saved-on-disk flags of every line it is about to touch,
// and writes the appropriate snapshot back whenever it is undone or
// redone. Getting these flag transitions wrong shows up as false
// "unsaved changes" markers, so the case split below is preserved
// exactly, including its asymmetric wrap/unwrap corners.
package undo

import "github.com/scribe-edit/scribe/internal/textline"

// Document is what commands need from the owning document: line lookup
// by number and the raw text mutations the commands wrap. Commands
// address lines by number and re-resolve them at replay time, because
// edits elsewhere in the document shift line numbering. Implementations
// must panic on invalid line numbers.
type Document interface {
	Line(line int) *textline.TextLine

	ApplyInsertText(line, col int, text string)
	ApplyRemoveText(line, col, length int)
	// ApplyWrapLine splits a line at col. The remainder becomes a fresh
	// line below when newLine is true, otherwise it is prepended to the
	// existing next line.
	ApplyWrapLine(line, col int, newLine bool)
	// ApplyUnwrapLine merges the next line into this one: all of it when
	// removeLine is true (the next line disappears), otherwise its first
	// length runes.
	ApplyUnwrapLine(line int, removeLine bool, length int)
	ApplyInsertLine(line int, text string)
	ApplyRemoveLine(line int)
}

// Kind identifies the edit a command wraps.
type Kind int

const (
	InsertText Kind = iota
	RemoveText
	WrapLine
	UnwrapLine
	InsertLine
	RemoveLine
)

// modificationFlag records one line's modified/saved state for one
// replay direction. Undo* bits hold the pre-edit state, Redo* bits the
// post-edit state. Line2 bits are used only by wrap and unwrap, which
// touch two lines.
type modificationFlag uint8

const (
	undoLine1Modified modificationFlag = 1 << iota
	undoLine2Modified
	redoLine1Modified
	redoLine2Modified
	undoLine1Saved
	undoLine2Saved
	redoLine1Saved
	redoLine2Saved
)

// Command is one reversible edit plus its flag snapshots. The six kinds
// share one struct dispatched by Kind rather than one type per kind;
// only the construction rules and the replay flag writes differ.
type Command struct {
	kind Kind
	line int
	col  int

	// text is the inserted or removed text for the text and line kinds.
	text string
	// length is the remainder moved to the second line (wrap) or the
	// length of the merged-in line (unwrap).
	length int
	// newLine: wrap created a fresh line / unwrap removed one, so the
	// inverse operation must do the opposite.
	newLine bool

	flags modificationFlag
}

// Kind returns the edit kind.
func (c *Command) Kind() Kind { return c.kind }

// Line returns the first line number the command touches.
func (c *Command) Line() int { return c.line }

func (c *Command) setFlag(f modificationFlag)   { c.flags |= f }
func (c *Command) unsetFlag(f modificationFlag) { c.flags &^= f }
func (c *Command) isFlagSet(f modificationFlag) bool {
	return c.flags&f != 0
}

// NewInsertText records inserting text at line/col. The line always
// becomes modified on redo; undo restores whichever of modified/saved it
// carried before the edit.
func NewInsertText(doc Document, line, col int, text string) *Command {
	c := &Command{kind: InsertText, line: line, col: col, text: text}
	c.setFlag(redoLine1Modified)
	if doc.Line(line).MarkedAsModified() {
		c.setFlag(undoLine1Modified)
	} else {
		c.setFlag(undoLine1Saved)
	}
	return c
}

// NewRemoveText records removing text at line/col.
func NewRemoveText(doc Document, line, col int, text string) *Command {
	c := &Command{kind: RemoveText, line: line, col: col, text: text}
	c.setFlag(redoLine1Modified)
	if doc.Line(line).MarkedAsModified() {
		c.setFlag(undoLine1Modified)
	} else {
		c.setFlag(undoLine1Saved)
	}
	return c
}

// NewWrapLine records splitting a line at col. A wrap at the very start
// or end of a line leaves one half byte-identical to its pre-split
// content, which is why a previously saved line may legitimately stay
// saved here instead of turning modified.
func NewWrapLine(doc Document, line, col int, newLine bool) *Command {
	tl := doc.Line(line)
	length := tl.Length() - col

	c := &Command{kind: WrapLine, line: line, col: col, length: length, newLine: newLine}

	if length > 0 || tl.MarkedAsModified() {
		c.setFlag(redoLine1Modified)
	} else if tl.MarkedAsSavedOnDisk() {
		c.setFlag(redoLine1Saved)
	}

	if col > 0 || length == 0 || tl.MarkedAsModified() {
		c.setFlag(redoLine2Modified)
	} else if tl.MarkedAsSavedOnDisk() {
		c.setFlag(redoLine2Saved)
	}

	if tl.MarkedAsModified() {
		c.setFlag(undoLine1Modified)
	} else if (length > 0 && col > 0) || tl.MarkedAsSavedOnDisk() {
		c.setFlag(undoLine1Saved)
	}
	return c
}

// NewUnwrapLine records merging line+1 into line. The three cases key on
// which of the two lines is empty: an empty half contributes no
// characters, so the merged line's redo state follows the half that
// actually had content.
func NewUnwrapLine(doc Document, line int, removeLine bool) *Command {
	tl := doc.Line(line)
	nextLine := doc.Line(line + 1)

	len1 := tl.Length()
	len2 := nextLine.Length()

	c := &Command{kind: UnwrapLine, line: line, col: len1, length: len2, newLine: removeLine}

	switch {
	case len1 > 0 && len2 > 0:
		c.setFlag(redoLine1Modified)

		if tl.MarkedAsModified() {
			c.setFlag(undoLine1Modified)
		} else {
			c.setFlag(undoLine1Saved)
		}
		if nextLine.MarkedAsModified() {
			c.setFlag(undoLine2Modified)
		} else {
			c.setFlag(undoLine2Saved)
		}

	case len1 == 0:
		if nextLine.MarkedAsModified() {
			c.setFlag(redoLine1Modified)
		} else if nextLine.MarkedAsSavedOnDisk() {
			c.setFlag(redoLine1Saved)
		}

		if tl.MarkedAsModified() {
			c.setFlag(undoLine1Modified)
		} else {
			c.setFlag(undoLine1Saved)
		}
		if nextLine.MarkedAsModified() {
			c.setFlag(undoLine2Modified)
		} else if nextLine.MarkedAsSavedOnDisk() {
			c.setFlag(undoLine2Saved)
		}

	default: // len2 == 0
		if nextLine.MarkedAsModified() {
			c.setFlag(redoLine1Modified)
		} else if nextLine.MarkedAsSavedOnDisk() {
			c.setFlag(redoLine1Saved)
		}

		if tl.MarkedAsModified() {
			c.setFlag(undoLine1Modified)
		} else if tl.MarkedAsSavedOnDisk() {
			c.setFlag(undoLine1Saved)
		}
		if nextLine.MarkedAsModified() {
			c.setFlag(undoLine2Modified)
		} else {
			c.setFlag(undoLine2Saved)
		}
	}
	return c
}

// NewInsertLine records inserting a whole new line. The line does not
// exist yet at construction, so there is no undo state to capture; undo
// simply removes it again.
func NewInsertLine(line int, text string) *Command {
	c := &Command{kind: InsertLine, line: line, text: text}
	c.setFlag(redoLine1Modified)
	return c
}

// NewRemoveLine records deleting a whole line. Deleting removes the
// line's state with it, so only the undo side is captured; re-insertion
// on undo restores it.
func NewRemoveLine(doc Document, line int, text string) *Command {
	c := &Command{kind: RemoveLine, line: line, text: text}
	if doc.Line(line).MarkedAsModified() {
		c.setFlag(undoLine1Modified)
	} else {
		c.setFlag(undoLine1Saved)
	}
	return c
}
