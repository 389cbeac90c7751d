package studyapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/store"
	"github.com/phrazzld/studyaid/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProjects(t *testing.T) {
	t.Parallel()

	t.Run("empty store", func(t *testing.T) {
		t.Parallel()
		fake := testutils.NewFakeStudyService(t)
		client, _ := newTestClient(t, fake.URL())

		projects, err := client.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("null body", func(t *testing.T) {
		t.Parallel()
		fake := testutils.NewFakeStudyService(t)
		fake.Respond(http.MethodGet, "/projects", http.StatusOK, `null`)
		client, _ := newTestClient(t, fake.URL())

		projects, err := client.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, projects)
	})

	t.Run("stored projects in order", func(t *testing.T) {
		t.Parallel()
		fake := testutils.NewFakeStudyService(t)
		fake.SetProjects(
			domain.Project{ID: 2, Title: "Cells", StudyMaterial: "Mitochondria"},
			domain.Project{ID: 1, Title: "Plants", StudyMaterial: "Chlorophyll"},
		)
		client, _ := newTestClient(t, fake.URL())

		projects, err := client.List(context.Background())
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, int64(2), projects[0].ID)
		assert.Equal(t, "Plants", projects[1].Title)
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Parallel()
		fake := testutils.NewFakeStudyService(t)
		fake.Respond(http.MethodGet, "/projects", http.StatusOK, `{"result": []}`)
		client, _ := newTestClient(t, fake.URL())

		_, err := client.List(context.Background())
		assert.ErrorIs(t, err, store.ErrInvalidResponse)
		assert.False(t, store.IsRetryable(err))
	})

	t.Run("database not configured", func(t *testing.T) {
		t.Parallel()
		fake := testutils.NewFakeStudyService(t)
		fake.Respond(http.MethodGet, "/projects", http.StatusServiceUnavailable, `{"detail": "Database not configured"}`)
		client, buf := newTestClient(t, fake.URL())

		_, err := client.List(context.Background())
		assert.ErrorIs(t, err, store.ErrRejected)
		assert.Contains(t, err.Error(), "Database not configured")

		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, http.StatusServiceUnavailable, storeErr.StatusCode)
		assert.Contains(t, buf.String(), "project store call failed")
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t, closedServerURL(t))

		_, err := client.List(context.Background())
		assert.ErrorIs(t, err, store.ErrUnavailable)
		assert.True(t, store.IsRetryable(err))
	})
}

func TestCreateProject(t *testing.T) {
	t.Parallel()

	fake := testutils.NewFakeStudyService(t)
	client, _ := newTestClient(t, fake.URL())

	created, err := client.Create(context.Background(), "  Genetics ", "DNA stores information.\n")
	require.NoError(t, err)
	assert.Equal(t, "Genetics", created.Title)
	assert.Equal(t, "DNA stores information.", created.StudyMaterial)
	assert.Positive(t, created.ID)

	reqs := fake.Requests("/createPro")
	require.Len(t, reqs, 1)
	var sent domain.Project
	require.NoError(t, reqs[0].DecodeBody(&sent))
	assert.Equal(t, created, sent)

	assert.Equal(t, []domain.Project{created}, fake.Projects())

	got, err := client.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateProjectBlankInputMakesNoRequest(t *testing.T) {
	t.Parallel()

	fake := testutils.NewFakeStudyService(t)
	client, _ := newTestClient(t, fake.URL())

	_, err := client.Create(context.Background(), "   ", "material")
	assert.ErrorIs(t, err, store.ErrEmptyTitleOrMaterial)

	_, err = client.Create(context.Background(), "title", "")
	assert.ErrorIs(t, err, store.ErrEmptyTitleOrMaterial)

	assert.Empty(t, fake.Requests())
}

func TestCreateProjectMismatchedEcho(t *testing.T) {
	t.Parallel()

	fake := testutils.NewFakeStudyService(t)
	fake.Respond(http.MethodPost, "/createPro", http.StatusOK, `{"id": 7, "title": "x", "studyMaterial": "y"}`)
	client, _ := newTestClient(t, fake.URL())

	_, err := client.Create(context.Background(), "title", "material")
	assert.ErrorIs(t, err, store.ErrInvalidResponse)
}

func TestGetProjectNotFound(t *testing.T) {
	t.Parallel()

	fake := testutils.NewFakeStudyService(t)
	fake.SetProjects(domain.Project{ID: 1, Title: "Plants", StudyMaterial: "Chlorophyll"})
	client, _ := newTestClient(t, fake.URL())

	_, err := client.Get(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrProjectNotFound)
	assert.True(t, store.IsNotFoundError(err))
}
