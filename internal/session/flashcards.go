package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/generation"
)

// FlashcardState is the state of a FlashcardSession.
type FlashcardState int

// Flashcard states.
const (
	FlashcardsEmpty FlashcardState = iota
	FlashcardsReady
)

func (s FlashcardState) String() string {
	switch s {
	case FlashcardsEmpty:
		return "empty"
	case FlashcardsReady:
		return "ready"
	default:
		return fmt.Sprintf("FlashcardState(%d)", int(s))
	}
}

// FlashcardView is a snapshot of a FlashcardSession for display.
type FlashcardView struct {
	State      FlashcardState
	Generating bool
	// Index and Total are zero while empty.
	Index    int
	Total    int
	Revealed bool
	// Card is the current card; nil while empty.
	Card         *domain.Flashcard
	ErrorMessage string
}

// Progress returns the "Card i of n" label, or "" while empty.
func (v FlashcardView) Progress() string {
	if v.Total == 0 {
		return ""
	}
	return fmt.Sprintf("Card %d of %d", v.Index+1, v.Total)
}

// FlashcardSession drills a generated flashcard deck.
//
// Navigation never fails: moves past either end and every operation on an
// empty session are no-ops.
type FlashcardSession struct {
	base
	gateway generation.Gateway

	mu         sync.Mutex
	deck       *domain.FlashcardDeck
	index      int
	revealed   bool
	generating bool
	errMessage string
	token      uint64
}

// NewFlashcardSession creates an empty session for project.
func NewFlashcardSession(gateway generation.Gateway, project domain.Project, opts ...Option) *FlashcardSession {
	return &FlashcardSession{
		base:    newBase(string(generation.ModeFlashcards), project, opts),
		gateway: gateway,
	}
}

func (s *FlashcardSession) stateLocked() FlashcardState {
	if s.deck.Len() == 0 {
		return FlashcardsEmpty
	}
	return FlashcardsReady
}

// Generate requests a deck. It is valid only while empty; it returns
// ErrSessionBusy if a request is pending and ErrInvalidState once a deck is
// loaded. On failure, including an empty deck, the session stays empty with
// an error message.
func (s *FlashcardSession) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return ErrSessionBusy
	}
	if s.deck != nil {
		s.mu.Unlock()
		return ErrInvalidState
	}
	s.generating = true
	s.errMessage = ""
	s.token++
	token := s.token
	s.mu.Unlock()

	deck, err := s.gateway.GenerateFlashcards(ctx, s.project)
	if err == nil && deck.Len() == 0 {
		err = generation.NewError(generation.KindMalformedResponse, generation.ModeFlashcards, 0, domain.ErrEmptyDeck)
	}

	s.mu.Lock()
	if s.token != token {
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "discarding stale flashcard deck")
		return ErrStale
	}
	s.generating = false
	if err != nil {
		s.errMessage = generation.UserMessage(generation.ModeFlashcards, err)
		msg := s.errMessage
		s.mu.Unlock()

		s.logger.DebugContext(ctx, "flashcard generation failed", "error", err)
		s.emit(ctx, FlashcardsEmpty, FlashcardsEmpty, msg)
		return err
	}
	s.deck = deck
	s.index = 0
	s.revealed = false
	s.mu.Unlock()

	s.emit(ctx, FlashcardsEmpty, FlashcardsReady, "")
	return nil
}

// Flip toggles whether the current card's answer is revealed.
func (s *FlashcardSession) Flip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deck.Len() == 0 {
		return
	}
	s.revealed = !s.revealed
}

// Next moves to the following card, hiding its answer. No-op at the last
// card.
func (s *FlashcardSession) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moveLocked(s.index + 1)
}

// Previous moves to the preceding card, hiding its answer. No-op at the
// first card.
func (s *FlashcardSession) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moveLocked(s.index - 1)
}

func (s *FlashcardSession) moveLocked(target int) {
	n := s.deck.Len()
	if n == 0 {
		return
	}
	target = max(0, min(target, n-1))
	if target == s.index {
		return
	}
	s.index = target
	s.revealed = false
}

// ResetDeck returns to the first card with the answer hidden, keeping the
// deck.
func (s *FlashcardSession) ResetDeck() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = 0
	s.revealed = false
}

// Reset discards the deck and any pending request, returning to empty.
func (s *FlashcardSession) Reset() {
	s.mu.Lock()
	from := s.stateLocked()
	s.deck = nil
	s.index = 0
	s.revealed = false
	s.generating = false
	s.errMessage = ""
	s.token++
	s.mu.Unlock()

	s.emit(context.Background(), from, FlashcardsEmpty, "")
}

// State returns the current state.
func (s *FlashcardSession) State() FlashcardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// View returns a snapshot of the session.
func (s *FlashcardSession) View() FlashcardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := FlashcardView{
		State:        s.stateLocked(),
		Generating:   s.generating,
		ErrorMessage: s.errMessage,
	}
	if n := s.deck.Len(); n > 0 {
		card := s.deck.Cards[s.index]
		v.Index = s.index
		v.Total = n
		v.Revealed = s.revealed
		v.Card = &card
	}
	return v
}
