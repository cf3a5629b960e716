package undo

import (
	"sync"

	"github.com/scribe-edit/scribe/internal/logger"
)

const DefaultMaxHistory = 1000

// Manager owns the undo and redo stacks for one document. Commands are
// recorded after their initial application; recording truncates any redo
// branch, and the history is bounded by simple FIFO eviction of the
// oldest commands.
type Manager struct {
	mu         sync.Mutex
	doc        Document
	undos      []*Command
	redos      []*Command
	maxHistory int
}

// NewManager creates a manager replaying against doc.
func NewManager(doc Document, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		doc:        doc,
		maxHistory: maxHistory,
	}
}

// Record pushes an already-applied command onto the undo stack and
// drops any redoable history.
func (m *Manager) Record(c *Command) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.redos = m.redos[:0]
	m.undos = append(m.undos, c)
	if len(m.undos) > m.maxHistory {
		m.undos = m.undos[len(m.undos)-m.maxHistory:]
	}

	logger.DebugTagf("undo", "recorded command kind=%d line=%d, depth=%d", c.Kind(), c.Line(), len(m.undos))
}

// Undo reverts the most recent command and returns it, or nil if there
// is nothing to undo.
func (m *Manager) Undo() *Command {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.undos) == 0 {
		return nil
	}

	c := m.undos[len(m.undos)-1]
	m.undos = m.undos[:len(m.undos)-1]
	c.Undo(m.doc)
	m.redos = append(m.redos, c)

	logger.DebugTagf("undo", "undid command kind=%d line=%d", c.Kind(), c.Line())
	return c
}

// Redo reapplies the most recently undone command and returns it, or
// nil if there is nothing to redo.
func (m *Manager) Redo() *Command {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.redos) == 0 {
		return nil
	}

	c := m.redos[len(m.redos)-1]
	m.redos = m.redos[:len(m.redos)-1]
	c.Redo(m.doc)
	m.undos = append(m.undos, c)

	logger.DebugTagf("undo", "redid command kind=%d line=%d", c.Kind(), c.Line())
	return c
}

// CanUndo reports whether the undo stack is non-empty.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undos) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redos) > 0
}

// Clear drops all history. Called when a document is (re)loaded.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undos = m.undos[:0]
	m.redos = m.redos[:0]
	logger.DebugTagf("undo", "history cleared")
}

// MarkSavedOnDisk reconciles pending commands with a completed disk
// save. Commands on the undo stack get their redo-side flags promoted,
// newest first, so that redoing back to the saved state restores Saved
// rather than Modified; commands on the redo stack get their undo-side
// flags promoted, nearest first, for the mirror reason. Each direction
// uses a fresh bitset so a line is promoted at most once per pass.
func (m *Manager) MarkSavedOnDisk() {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := &bitset{}
	for i := len(m.undos) - 1; i >= 0; i-- {
		m.undos[i].UpdateRedoSavedOnDiskFlag(lines)
	}

	lines = &bitset{}
	for i := len(m.redos) - 1; i >= 0; i-- {
		m.redos[i].UpdateUndoSavedOnDiskFlag(lines)
	}

	logger.DebugTagf("undo", "reconciled %d undo / %d redo commands after save", len(m.undos), len(m.redos))
}
