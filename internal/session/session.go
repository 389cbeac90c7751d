package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/events"
	"github.com/phrazzld/studyaid/internal/platform/logger"
)

var (
	// ErrSessionBusy is returned when a generation call is already pending.
	// Callers treat it as an ignored duplicate action.
	ErrSessionBusy = errors.New("session busy: a request is already in progress")

	// ErrInvalidState is returned when an operation is not allowed in the
	// session's current state.
	ErrInvalidState = errors.New("operation not allowed in current session state")

	// ErrStale is returned by a generation call whose result was discarded
	// because the session was reset while it was pending.
	ErrStale = errors.New("session was reset while the request was pending")
)

// Option configures a session.
type Option func(*base)

// WithEmitter publishes every state change to emitter.
func WithEmitter(emitter events.Emitter) Option {
	return func(b *base) {
		b.emitter = emitter
	}
}

// WithLogger sets the session logger.
func WithLogger(log *slog.Logger) Option {
	return func(b *base) {
		b.logger = log
	}
}

// base holds what every session kind shares.
type base struct {
	kind    string
	project domain.Project
	emitter events.Emitter
	logger  *slog.Logger
}

func newBase(kind string, project domain.Project, opts []Option) base {
	b := base{kind: kind, project: project}
	for _, opt := range opts {
		opt(&b)
	}
	b.logger = logger.OrDiscard(b.logger).With(
		"component", "session",
		"session", kind,
		"project_id", project.ID)
	return b
}

// Project returns the project the session is bound to.
func (b *base) Project() domain.Project {
	return b.project
}

// emit must be called without the session lock held.
func (b *base) emit(ctx context.Context, from, to fmt.Stringer, detail string) {
	if b.emitter == nil || (from.String() == to.String() && detail == "") {
		return
	}
	change := events.NewStateChange(b.kind, b.project.ID, from.String(), to.String())
	change.Detail = detail
	if err := b.emitter.Emit(ctx, change); err != nil {
		b.logger.WarnContext(ctx, "state change handler failed", "error", err)
	}
}
