package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/generation"
)

// MnemonicState is the state of a MnemonicSession.
type MnemonicState int

// Mnemonic states.
const (
	MnemonicsIdle MnemonicState = iota
	MnemonicsGenerating
	MnemonicsReady
	MnemonicsFailed
)

func (s MnemonicState) String() string {
	switch s {
	case MnemonicsIdle:
		return "idle"
	case MnemonicsGenerating:
		return "generating"
	case MnemonicsReady:
		return "ready"
	case MnemonicsFailed:
		return "failed"
	default:
		return fmt.Sprintf("MnemonicState(%d)", int(s))
	}
}

// MnemonicView is a snapshot of a MnemonicSession for display.
type MnemonicView struct {
	State MnemonicState
	// Content is the last successfully generated content. It stays set
	// while a regeneration is pending and after a regeneration fails.
	Content *domain.AnnotatedContent
	// ErrorMessage is set in MnemonicsFailed.
	ErrorMessage string
	// Notice is a transient message shown alongside Content after a failed
	// regeneration.
	Notice string
}

// MnemonicSession generates and shows annotated content.
type MnemonicSession struct {
	base
	gateway generation.Gateway

	mu         sync.Mutex
	state      MnemonicState
	content    *domain.AnnotatedContent
	errMessage string
	notice     string
	token      uint64
}

// NewMnemonicSession creates an idle session for project.
func NewMnemonicSession(gateway generation.Gateway, project domain.Project, opts ...Option) *MnemonicSession {
	return &MnemonicSession{
		base:    newBase(string(generation.ModeMnemonics), project, opts),
		gateway: gateway,
	}
}

// Generate requests annotated content and blocks until the result is
// applied. Success replaces any prior content in one step. Failure with no
// prior content moves to MnemonicsFailed; failure after a prior success
// keeps that content in MnemonicsReady and sets a notice. Returns
// ErrSessionBusy while a request is pending.
func (s *MnemonicSession) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.state == MnemonicsGenerating {
		s.mu.Unlock()
		return ErrSessionBusy
	}
	from := s.state
	s.state = MnemonicsGenerating
	s.errMessage = ""
	s.notice = ""
	s.token++
	token := s.token
	s.mu.Unlock()

	s.emit(ctx, from, MnemonicsGenerating, "")

	content, err := s.gateway.GenerateMnemonics(ctx, s.project)
	if err == nil && content == nil {
		err = generation.NewError(generation.KindMalformedResponse, generation.ModeMnemonics, 0,
			errors.New("gateway returned no content"))
	}

	s.mu.Lock()
	if s.token != token {
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "discarding stale mnemonic content")
		return ErrStale
	}
	if err != nil {
		msg := generation.UserMessage(generation.ModeMnemonics, err)
		to := MnemonicsFailed
		if s.content != nil {
			to = MnemonicsReady
			s.notice = msg
		} else {
			s.errMessage = msg
		}
		s.state = to
		s.mu.Unlock()

		s.emit(ctx, MnemonicsGenerating, to, msg)
		return err
	}
	s.state = MnemonicsReady
	s.content = content
	s.mu.Unlock()

	s.emit(ctx, MnemonicsGenerating, MnemonicsReady, "")
	return nil
}

// Regenerate is Generate; it exists for callers that already show content.
func (s *MnemonicSession) Regenerate(ctx context.Context) error {
	return s.Generate(ctx)
}

// DismissNotice clears the transient notice.
func (s *MnemonicSession) DismissNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = ""
}

// Reset discards content and any pending request, returning to
// MnemonicsIdle.
func (s *MnemonicSession) Reset() {
	s.mu.Lock()
	from := s.state
	s.state = MnemonicsIdle
	s.content = nil
	s.errMessage = ""
	s.notice = ""
	s.token++
	s.mu.Unlock()

	s.emit(context.Background(), from, MnemonicsIdle, "")
}

// State returns the current state.
func (s *MnemonicSession) State() MnemonicState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View returns a snapshot of the session.
func (s *MnemonicSession) View() MnemonicView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MnemonicView{
		State:        s.state,
		Content:      s.content,
		ErrorMessage: s.errMessage,
		Notice:       s.notice,
	}
}
