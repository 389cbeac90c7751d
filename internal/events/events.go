package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// StateChange records one session transition.
type StateChange struct {
	// ID is a unique, time-ordered identifier for this event.
	ID uuid.UUID `json:"id"`

	// Session names the session kind, e.g. "blurt".
	Session string `json:"session"`

	// ProjectID identifies the project the session is bound to.
	ProjectID int64 `json:"project_id"`

	From string `json:"from"`
	To   string `json:"to"`

	// Detail is an optional short note such as the user-facing error.
	Detail string `json:"detail,omitempty"`

	// CreatedAt is when the transition happened.
	CreatedAt time.Time `json:"created_at"`
}

// NewStateChange creates a StateChange stamped with a fresh id and the
// current time.
func NewStateChange(session string, projectID int64, from, to string) *StateChange {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &StateChange{
		ID:        id,
		Session:   session,
		ProjectID: projectID,
		From:      from,
		To:        to,
		CreatedAt: time.Now(),
	}
}

// Handler defines an interface for components that react to state changes.
type Handler interface {
	// HandleStateChange processes the given change.
	HandleStateChange(ctx context.Context, change *StateChange) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, change *StateChange) error

// HandleStateChange calls f.
func (f HandlerFunc) HandleStateChange(ctx context.Context, change *StateChange) error {
	return f(ctx, change)
}

// Emitter defines an interface for components that publish state changes.
type Emitter interface {
	// Emit publishes the change to all registered handlers.
	Emit(ctx context.Context, change *StateChange) error
}

// LogHandler returns a Handler that logs every change at debug level.
func LogHandler(logger *slog.Logger) Handler {
	return HandlerFunc(func(ctx context.Context, change *StateChange) error {
		logger.DebugContext(ctx, "session state changed",
			"event_id", change.ID.String(),
			"session", change.Session,
			"project_id", change.ProjectID,
			"from", change.From,
			"to", change.To,
			"detail", change.Detail)
		return nil
	})
}
