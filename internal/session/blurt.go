package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/generation"
)

// BlurtState is the state of a BlurtSession.
type BlurtState int

// Blurt states.
const (
	BlurtIdle BlurtState = iota
	BlurtSubmitting
	BlurtSucceeded
	BlurtFailed
)

func (s BlurtState) String() string {
	switch s {
	case BlurtIdle:
		return "idle"
	case BlurtSubmitting:
		return "submitting"
	case BlurtSucceeded:
		return "succeeded"
	case BlurtFailed:
		return "failed"
	default:
		return fmt.Sprintf("BlurtState(%d)", int(s))
	}
}

// BlurtView is a snapshot of a BlurtSession for display.
type BlurtView struct {
	State  BlurtState
	Answer string
	// Analysis is set only in BlurtSucceeded.
	Analysis *domain.BlurtAnalysis
	// Tier is meaningful only when Analysis is set.
	Tier domain.AccuracyTier
	// ErrorMessage is the user-facing message in BlurtFailed.
	ErrorMessage string
	// ShowMaterial reports whether the study material should be visible
	// while the user writes.
	ShowMaterial bool
}

// BlurtSession scores a recalled answer against the project's material.
type BlurtSession struct {
	base
	gateway generation.Gateway

	mu           sync.Mutex
	state        BlurtState
	answer       string
	analysis     *domain.BlurtAnalysis
	errMessage   string
	showMaterial bool
	token        uint64
}

// NewBlurtSession creates an idle session for project.
func NewBlurtSession(gateway generation.Gateway, project domain.Project, opts ...Option) *BlurtSession {
	return &BlurtSession{
		base:         newBase(string(generation.ModeBlurt), project, opts),
		gateway:      gateway,
		showMaterial: true,
	}
}

// Submit sends answer for analysis and blocks until the result is applied.
//
// A blank answer fails with generation.ErrEmptyAnswer and changes nothing.
// Submit is allowed from BlurtIdle and, as a retry, from BlurtFailed. It
// returns ErrSessionBusy while a submission is pending and ErrInvalidState
// after a success until Reset is called. Gateway failures move the session
// to BlurtFailed and are returned as-is.
func (s *BlurtSession) Submit(ctx context.Context, answer string) error {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return generation.ErrEmptyAnswer
	}

	s.mu.Lock()
	switch s.state {
	case BlurtSubmitting:
		s.mu.Unlock()
		return ErrSessionBusy
	case BlurtSucceeded:
		s.mu.Unlock()
		return ErrInvalidState
	}
	from := s.state
	s.state = BlurtSubmitting
	s.answer = answer
	s.analysis = nil
	s.errMessage = ""
	s.token++
	token := s.token
	s.mu.Unlock()

	s.emit(ctx, from, BlurtSubmitting, "")

	analysis, err := s.gateway.AnalyzeBlurt(ctx, s.project, answer)
	if err == nil && analysis == nil {
		err = generation.NewError(generation.KindMalformedResponse, generation.ModeBlurt, 0,
			errors.New("gateway returned no analysis"))
	}

	s.mu.Lock()
	if s.token != token {
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "discarding stale blurt result")
		return ErrStale
	}
	if err != nil {
		s.state = BlurtFailed
		s.errMessage = generation.UserMessage(generation.ModeBlurt, err)
		msg := s.errMessage
		s.mu.Unlock()

		s.emit(ctx, BlurtSubmitting, BlurtFailed, msg)
		return err
	}
	s.state = BlurtSucceeded
	s.analysis = analysis
	s.mu.Unlock()

	s.emit(ctx, BlurtSubmitting, BlurtSucceeded, "")
	return nil
}

// Reset clears the answer, analysis and error and returns to BlurtIdle from
// any state. A pending submission's result will be discarded.
func (s *BlurtSession) Reset() {
	s.mu.Lock()
	from := s.state
	s.state = BlurtIdle
	s.answer = ""
	s.analysis = nil
	s.errMessage = ""
	s.showMaterial = true
	s.token++
	s.mu.Unlock()

	s.emit(context.Background(), from, BlurtIdle, "")
}

// ToggleMaterial shows or hides the study material and returns the new
// visibility.
func (s *BlurtSession) ToggleMaterial() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showMaterial = !s.showMaterial
	return s.showMaterial
}

// State returns the current state.
func (s *BlurtSession) State() BlurtState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View returns a snapshot of the session.
func (s *BlurtSession) View() BlurtView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := BlurtView{
		State:        s.state,
		Answer:       s.answer,
		Analysis:     s.analysis,
		ErrorMessage: s.errMessage,
		ShowMaterial: s.showMaterial,
	}
	if s.analysis != nil {
		v.Tier = s.analysis.Tier()
	}
	return v
}
