package session

import (
	"testing"
	"time"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/events"
	"github.com/stretchr/testify/require"
)

func testProject() domain.Project {
	return domain.Project{ID: 1700000000000, Title: "Photosynthesis", StudyMaterial: "Plants convert light to energy."}
}

func recordingEmitter() (*events.InMemoryEmitter, *events.Recorder) {
	emitter := events.NewInMemoryEmitter(nil)
	rec := &events.Recorder{}
	emitter.RegisterHandler(rec)
	return emitter, rec
}

// waitEntered blocks until a held gateway call has started.
func waitEntered(t *testing.T, entered <-chan struct{}) {
	t.Helper()
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "gateway call did not start")
	}
}

func receive(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		require.FailNow(t, "session call did not return")
		return nil
	}
}
