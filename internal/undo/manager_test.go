package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyAndRecord(m *Manager, d *fakeDoc, c *Command) {
	c.Redo(d)
	m.Record(c)
}

func TestManagerUndoRedo(t *testing.T) {
	d := newFakeDoc("hello")
	m := NewManager(d, 0)

	require.False(t, m.CanUndo())
	require.False(t, m.CanRedo())
	require.Nil(t, m.Undo())
	require.Nil(t, m.Redo())

	applyAndRecord(m, d, NewInsertText(d, 0, 5, " world"))
	require.Equal(t, "hello world", d.Line(0).Text())
	require.True(t, m.CanUndo())

	c := m.Undo()
	require.NotNil(t, c)
	assert.Equal(t, InsertText, c.Kind())
	assert.Equal(t, "hello", d.Line(0).Text())
	assert.True(t, m.CanRedo())
	assert.False(t, m.CanUndo())

	require.NotNil(t, m.Redo())
	assert.Equal(t, "hello world", d.Line(0).Text())
	assert.True(t, m.CanUndo())
	assert.False(t, m.CanRedo())
}

func TestManagerRecordTruncatesRedoBranch(t *testing.T) {
	d := newFakeDoc("")
	m := NewManager(d, 0)

	applyAndRecord(m, d, NewInsertText(d, 0, 0, "a"))
	applyAndRecord(m, d, NewInsertText(d, 0, 1, "b"))
	require.NotNil(t, m.Undo())
	require.True(t, m.CanRedo())

	// branching off history drops the redoable tail
	applyAndRecord(m, d, NewInsertText(d, 0, 1, "c"))
	assert.False(t, m.CanRedo())
	assert.Equal(t, "ac", d.Line(0).Text())
}

func TestManagerMaxHistoryEvictsOldest(t *testing.T) {
	d := newFakeDoc("")
	m := NewManager(d, 2)

	applyAndRecord(m, d, NewInsertText(d, 0, 0, "a"))
	applyAndRecord(m, d, NewInsertText(d, 0, 1, "b"))
	applyAndRecord(m, d, NewInsertText(d, 0, 2, "c"))

	require.NotNil(t, m.Undo())
	require.NotNil(t, m.Undo())
	assert.Nil(t, m.Undo(), "oldest command was evicted")
	assert.Equal(t, "a", d.Line(0).Text())
}

func TestManagerClear(t *testing.T) {
	d := newFakeDoc("")
	m := NewManager(d, 0)

	applyAndRecord(m, d, NewInsertText(d, 0, 0, "a"))
	require.NotNil(t, m.Undo())
	m.Clear()

	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
}

func TestMarkSavedOnDiskPromotesRedoFlagsNewestFirst(t *testing.T) {
	d := newFakeDoc("hello")
	d.Line(0).MarkAsSavedOnDisk(true)
	m := NewManager(d, 0)

	applyAndRecord(m, d, NewInsertText(d, 0, 5, "!"))
	applyAndRecord(m, d, NewInsertText(d, 0, 6, "?"))

	// simulate the document being written to disk
	m.MarkSavedOnDisk()
	d.Line(0).MarkAsSavedOnDisk(true)

	// undoing moves away from the saved state: modified again
	require.NotNil(t, m.Undo())
	assert.True(t, d.Line(0).MarkedAsModified())

	// redoing back to the save point restores saved, not modified
	require.NotNil(t, m.Redo())
	assert.True(t, d.Line(0).MarkedAsSavedOnDisk())
	assert.False(t, d.Line(0).MarkedAsModified())

	// undoing two steps away from the save point stays modified
	require.NotNil(t, m.Undo())
	require.NotNil(t, m.Undo())
	assert.False(t, d.Line(0).MarkedAsModified(), "pre-history state was saved")

	// redoing the older command does not claim the saved flag
	require.NotNil(t, m.Redo())
	assert.True(t, d.Line(0).MarkedAsModified())
}

func TestMarkSavedOnDiskPromotesUndoFlagsOnRedoStack(t *testing.T) {
	d := newFakeDoc("hello")
	d.Line(0).MarkAsModified(true)
	m := NewManager(d, 0)

	applyAndRecord(m, d, NewInsertText(d, 0, 0, "x"))
	require.NotNil(t, m.Undo())

	// save happens with the command sitting on the redo stack
	m.MarkSavedOnDisk()
	d.Line(0).MarkAsSavedOnDisk(true)

	// redo then undo back to the save point: saved, not modified
	require.NotNil(t, m.Redo())
	assert.True(t, d.Line(0).MarkedAsModified())
	require.NotNil(t, m.Undo())
	assert.True(t, d.Line(0).MarkedAsSavedOnDisk())
	assert.False(t, d.Line(0).MarkedAsModified())
}
