package textline

// The modified/saved pair tracks whether this line's content matches
// what is on disk. The line only stores the booleans; every transition
// is decided by the undo commands in internal/undo, which snapshot and
// restore these flags across undo/redo and save reconciliation.

// MarkedAsModified reports whether the line changed since the last save.
func (l *TextLine) MarkedAsModified() bool {
	return l.modified
}

// MarkAsModified sets the modified flag. Marking a line modified clears
// its saved-on-disk flag, the two are mutually exclusive.
func (l *TextLine) MarkAsModified(modified bool) {
	l.modified = modified
	if modified {
		l.savedOnDisk = false
	}
}

// MarkedAsSavedOnDisk reports whether the line content matches the file
// on disk.
func (l *TextLine) MarkedAsSavedOnDisk() bool {
	return l.savedOnDisk
}

// MarkAsSavedOnDisk sets the saved-on-disk flag. Marking a line saved
// clears its modified flag.
func (l *TextLine) MarkAsSavedOnDisk(savedOnDisk bool) {
	l.savedOnDisk = savedOnDisk
	if savedOnDisk {
		l.modified = false
	}
}
