package event

import (
	"sync"

	"github.com/scribe-edit/scribe/internal/logger"
)

// Handler is the subscriber signature. The return value reports whether
// the event was consumed; dispatch currently ignores it.
type Handler func(e Event) bool

// Manager routes events to subscribers. Dispatch is synchronous on the
// caller's goroutine.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates an empty event manager.
func NewManager() *Manager {
	return &Manager{handlers: make(map[Type][]Handler)}
}

// Subscribe registers a handler for an event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Dispatch delivers an event to every handler registered for its type.
func (m *Manager) Dispatch(eventType Type, data any) {
	m.mu.RLock()
	handlers := m.handlers[eventType]
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}
	logger.DebugTagf("event", "dispatching type %v to %d handler(s)", eventType, len(handlers))

	// Copy so a handler subscribing during dispatch cannot race the slice.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)
	for _, handler := range handlersCopy {
		handler(Event{Type: eventType, Data: data})
	}
}
