package undo

// Save reconciliation: once the document is written to disk, pending
// commands still carry Modified flags computed against the old save
// state. Each command promotes its stale Modified flags to Saved, gated
// per line number by a shared bitset so that when several queued
// commands reference the same physical line, only the command closest to
// the saved state is promoted.

// UpdateRedoSavedOnDiskFlag promotes the command's redo-side Modified
// flags to Saved for line numbers not yet reconciled in this pass.
func (c *Command) UpdateRedoSavedOnDiskFlag(lines *bitset) {
	switch c.kind {
	case InsertText, RemoveText, InsertLine:
		if !lines.test(c.line) {
			lines.set(c.line)

			c.unsetFlag(redoLine1Modified)
			c.setFlag(redoLine1Saved)
		}

	case WrapLine:
		if c.isFlagSet(redoLine1Modified) && !lines.test(c.line) {
			lines.set(c.line)

			c.unsetFlag(redoLine1Modified)
			c.setFlag(redoLine1Saved)
		}
		if c.isFlagSet(redoLine2Modified) && !lines.test(c.line+1) {
			lines.set(c.line + 1)

			c.unsetFlag(redoLine2Modified)
			c.setFlag(redoLine2Saved)
		}

	case UnwrapLine:
		if c.isFlagSet(redoLine1Modified) && !lines.test(c.line) {
			lines.set(c.line)

			c.unsetFlag(redoLine1Modified)
			c.setFlag(redoLine1Saved)
		}

	case RemoveLine:
		// removing a line leaves no redo state to reconcile
	}
}

// UpdateUndoSavedOnDiskFlag promotes the command's undo-side Modified
// flags to Saved for line numbers not yet reconciled in this pass.
func (c *Command) UpdateUndoSavedOnDiskFlag(lines *bitset) {
	switch c.kind {
	case InsertText, RemoveText, RemoveLine:
		if !lines.test(c.line) {
			lines.set(c.line)

			c.unsetFlag(undoLine1Modified)
			c.setFlag(undoLine1Saved)
		}

	case WrapLine:
		if c.isFlagSet(undoLine1Modified) && !lines.test(c.line) {
			lines.set(c.line)

			c.unsetFlag(undoLine1Modified)
			c.setFlag(undoLine1Saved)
		}

	case UnwrapLine:
		if c.isFlagSet(undoLine1Modified) && !lines.test(c.line) {
			lines.set(c.line)

			c.unsetFlag(undoLine1Modified)
			c.setFlag(undoLine1Saved)
		}
		if c.isFlagSet(undoLine2Modified) && !lines.test(c.line+1) {
			lines.set(c.line + 1)

			c.unsetFlag(undoLine2Modified)
			c.setFlag(undoLine2Saved)
		}

	case InsertLine:
		// the line did not exist before the edit, no undo state to reconcile
	}
}
