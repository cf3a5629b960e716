package undo

import "unicode/utf8"

// Redo applies the command's edit and writes the post-edit flag
// snapshot to the touched line(s). The document also uses Redo for the
// initial application of a fresh command, which is what makes
// edit -> undo -> redo land on bit-for-bit identical flags.
func (c *Command) Redo(doc Document) {
	switch c.kind {
	case InsertText:
		doc.ApplyInsertText(c.line, c.col, c.text)
		c.writeRedoLine1(doc)

	case RemoveText:
		doc.ApplyRemoveText(c.line, c.col, utf8.RuneCountInString(c.text))
		c.writeRedoLine1(doc)

	case WrapLine:
		doc.ApplyWrapLine(c.line, c.col, c.newLine)
		c.writeRedoLine1(doc)

		nextLine := doc.Line(c.line + 1)
		nextLine.MarkAsModified(c.isFlagSet(redoLine2Modified))
		nextLine.MarkAsSavedOnDisk(c.isFlagSet(redoLine2Saved))

	case UnwrapLine:
		doc.ApplyUnwrapLine(c.line, c.newLine, c.length)
		c.writeRedoLine1(doc)

	case InsertLine:
		doc.ApplyInsertLine(c.line, c.text)
		c.writeRedoLine1(doc)

	case RemoveLine:
		doc.ApplyRemoveLine(c.line)
		// the line's state vanished with the line
	}
}

// Undo reverts the command's edit and writes the pre-edit flag snapshot
// back to the touched line(s).
func (c *Command) Undo(doc Document) {
	switch c.kind {
	case InsertText:
		doc.ApplyRemoveText(c.line, c.col, utf8.RuneCountInString(c.text))
		c.writeUndoLine1(doc)

	case RemoveText:
		doc.ApplyInsertText(c.line, c.col, c.text)
		c.writeUndoLine1(doc)

	case WrapLine:
		doc.ApplyUnwrapLine(c.line, c.newLine, c.length)
		c.writeUndoLine1(doc)

	case UnwrapLine:
		doc.ApplyWrapLine(c.line, c.col, c.newLine)
		c.writeUndoLine1(doc)

		nextLine := doc.Line(c.line + 1)
		nextLine.MarkAsModified(c.isFlagSet(undoLine2Modified))
		nextLine.MarkAsSavedOnDisk(c.isFlagSet(undoLine2Saved))

	case InsertLine:
		doc.ApplyRemoveLine(c.line)
		// the inserted line is gone again, nothing to restore

	case RemoveLine:
		doc.ApplyInsertLine(c.line, c.text)
		c.writeUndoLine1(doc)
	}
}

func (c *Command) writeRedoLine1(doc Document) {
	tl := doc.Line(c.line)
	tl.MarkAsModified(c.isFlagSet(redoLine1Modified))
	tl.MarkAsSavedOnDisk(c.isFlagSet(redoLine1Saved))
}

func (c *Command) writeUndoLine1(doc Document) {
	tl := doc.Line(c.line)
	tl.MarkAsModified(c.isFlagSet(undoLine1Modified))
	tl.MarkAsSavedOnDisk(c.isFlagSet(undoLine1Saved))
}
