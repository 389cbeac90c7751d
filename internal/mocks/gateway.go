package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/generation"
)

// MockGateway implements generation.Gateway for testing.
type MockGateway struct {
	// Function fields for customizable behavior
	GenerateMnemonicsFn  func(ctx context.Context, project domain.Project) (*domain.AnnotatedContent, error)
	GenerateFlashcardsFn func(ctx context.Context, project domain.Project) (*domain.FlashcardDeck, error)
	AnalyzeBlurtFn       func(ctx context.Context, project domain.Project, answer string) (*domain.BlurtAnalysis, error)

	// Default response values
	Content  *domain.AnnotatedContent
	Deck     *domain.FlashcardDeck
	Analysis *domain.BlurtAnalysis
	Err      error

	// Hold, when set, makes every call signal Entered (if set) and then
	// block until Hold yields a value or is closed. It lets tests observe a
	// session while a call is pending.
	Hold    chan struct{}
	Entered chan struct{}

	// Call tracking for verification
	Calls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Modes records the mode of every call in order
		Modes []generation.Mode

		// Projects contains the project passed to every call
		Projects []domain.Project

		// Answers contains the answers passed to AnalyzeBlurt
		Answers []string
	}
}

var _ generation.Gateway = (*MockGateway)(nil)

// GenerateMnemonics implements generation.Gateway.
func (m *MockGateway) GenerateMnemonics(ctx context.Context, project domain.Project) (*domain.AnnotatedContent, error) {
	m.track(generation.ModeMnemonics, project, nil)
	m.wait()

	if m.GenerateMnemonicsFn != nil {
		return m.GenerateMnemonicsFn(ctx, project)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Content, nil
}

// GenerateFlashcards implements generation.Gateway.
func (m *MockGateway) GenerateFlashcards(ctx context.Context, project domain.Project) (*domain.FlashcardDeck, error) {
	m.track(generation.ModeFlashcards, project, nil)
	m.wait()

	if m.GenerateFlashcardsFn != nil {
		return m.GenerateFlashcardsFn(ctx, project)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Deck, nil
}

// AnalyzeBlurt implements generation.Gateway.
func (m *MockGateway) AnalyzeBlurt(
	ctx context.Context,
	project domain.Project,
	answer string,
) (*domain.BlurtAnalysis, error) {
	m.track(generation.ModeBlurt, project, &answer)
	m.wait()

	if m.AnalyzeBlurtFn != nil {
		return m.AnalyzeBlurtFn(ctx, project, answer)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Analysis, nil
}

// CallCount returns how many calls were made for mode.
func (m *MockGateway) CallCount(mode generation.Mode) int {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()

	n := 0
	for _, got := range m.Calls.Modes {
		if got == mode {
			n++
		}
	}
	return n
}

// TotalCalls returns the number of calls across all modes.
func (m *MockGateway) TotalCalls() int {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	return len(m.Calls.Modes)
}

// LastAnswer returns the most recent AnalyzeBlurt answer, or "".
func (m *MockGateway) LastAnswer() string {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	if len(m.Calls.Answers) == 0 {
		return ""
	}
	return m.Calls.Answers[len(m.Calls.Answers)-1]
}

func (m *MockGateway) track(mode generation.Mode, project domain.Project, answer *string) {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	m.Calls.Modes = append(m.Calls.Modes, mode)
	m.Calls.Projects = append(m.Calls.Projects, project)
	if answer != nil {
		m.Calls.Answers = append(m.Calls.Answers, *answer)
	}
}

func (m *MockGateway) wait() {
	if m.Hold == nil {
		return
	}
	if m.Entered != nil {
		m.Entered <- struct{}{}
	}
	<-m.Hold
}

// NewHeldGateway returns a MockGateway whose calls block until release is
// called. Each call first signals on the returned mock's Entered channel.
func NewHeldGateway() (gw *MockGateway, release func()) {
	gw = &MockGateway{
		Hold:    make(chan struct{}),
		Entered: make(chan struct{}, 8),
	}
	var once sync.Once
	return gw, func() { once.Do(func() { close(gw.Hold) }) }
}
