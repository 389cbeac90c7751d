package session

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/studyaid/internal/events"
	"github.com/phrazzld/studyaid/internal/mocks"
	"github.com/phrazzld/studyaid/internal/platform/logger"
	"github.com/phrazzld/studyaid/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmitter struct {
	mock.Mock
}

func (m *mockEmitter) Emit(ctx context.Context, change *events.StateChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func transition(session, from, to string) any {
	return mock.MatchedBy(func(c *events.StateChange) bool {
		return c.Session == session && c.From == from && c.To == to
	})
}

func TestEmitterFailureDoesNotAffectSession(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)
	emitter := &mockEmitter{}
	emitter.On("Emit", mock.Anything, transition("mnemonics", "idle", "generating")).
		Return(errors.New("handler down")).Once()
	emitter.On("Emit", mock.Anything, transition("mnemonics", "generating", "ready")).
		Return(nil).Once()

	gw := &mocks.MockGateway{Content: testutils.MustDecodeContent(t, testutils.SampleMnemonicsJSON)}
	s := NewMnemonicSession(gw, testProject(), WithEmitter(emitter), WithLogger(log))

	require.NoError(t, s.Generate(context.Background()))
	assert.Equal(t, MnemonicsReady, s.State())

	emitter.AssertExpectations(t)
	logger.AssertLogContains(t, buf, "state change handler failed")
}

func TestStateChangesCarryProject(t *testing.T) {
	t.Parallel()

	p := testProject()
	emitter := &mockEmitter{}
	emitter.On("Emit", mock.Anything, mock.MatchedBy(func(c *events.StateChange) bool {
		return c.ProjectID == p.ID && c.Session == "blurt"
	})).Return(nil)

	s := NewBlurtSession(&mocks.MockGateway{Analysis: testutils.MustDecodeAnalysis(t, testutils.SampleBlurtJSON)}, p,
		WithEmitter(emitter))
	require.NoError(t, s.Submit(context.Background(), "light"))

	emitter.AssertNumberOfCalls(t, "Emit", 2)
}
