package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/studyaid/internal/platform/logger"
)

// InMemoryEmitter is an Emitter that keeps its handlers in memory and
// dispatches to them synchronously, in registration order.
type InMemoryEmitter struct {
	handlers []Handler
	mu       sync.RWMutex
	logger   *slog.Logger
}

var _ Emitter = (*InMemoryEmitter)(nil)

// NewInMemoryEmitter creates a new InMemoryEmitter. A nil logger discards.
func NewInMemoryEmitter(log *slog.Logger) *InMemoryEmitter {
	return &InMemoryEmitter{
		handlers: make([]Handler, 0),
		logger:   logger.OrDiscard(log).With("component", "in_memory_emitter"),
	}
}

// RegisterHandler adds a handler to receive state changes.
func (e *InMemoryEmitter) RegisterHandler(handler Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
}

// Emit publishes the change to all registered handlers.
// If any handler returns an error, the change is still delivered to the
// remaining handlers and the first error is returned.
func (e *InMemoryEmitter) Emit(ctx context.Context, change *StateChange) error {
	e.mu.RLock()
	handlers := make([]Handler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleStateChange(ctx, change); err != nil {
			e.logger.ErrorContext(ctx, "handler failed to process state change",
				"error", err,
				"handler_index", i,
				"event_id", change.ID.String(),
				"session", change.Session)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// Recorder is a Handler that keeps every change it receives.
type Recorder struct {
	mu      sync.Mutex
	changes []StateChange
}

// HandleStateChange implements Handler.
func (r *Recorder) HandleStateChange(_ context.Context, change *StateChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, *change)
	return nil
}

// Changes returns a copy of the recorded changes.
func (r *Recorder) Changes() []StateChange {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]StateChange(nil), r.changes...)
}

// Transitions returns the recorded changes as "from->to" strings.
func (r *Recorder) Transitions() []string {
	changes := r.Changes()
	out := make([]string, len(changes))
	for i, c := range changes {
		out[i] = c.From + "->" + c.To
	}
	return out
}
