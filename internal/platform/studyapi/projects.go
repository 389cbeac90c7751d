package studyapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/redact"
	"github.com/phrazzld/studyaid/internal/store"
)

var _ store.ProjectStore = (*Client)(nil)

// List implements store.ProjectStore.
func (c *Client) List(ctx context.Context) ([]domain.Project, error) {
	const op = "list projects"

	rep, err := c.do(ctx, http.MethodGet, "/projects", nil)
	if failure := c.storeFailure(ctx, op, rep, err); failure != nil {
		return nil, failure
	}

	var projects []domain.Project
	if err := json.Unmarshal(rep.body, &projects); err != nil {
		c.logger.ErrorContext(ctx, "project list could not be decoded",
			"request_id", rep.requestID,
			"body_snippet", redact.Snippet(string(rep.body), snippetRunes))
		return nil, store.NewStoreError(op, rep.status, store.ErrInvalidResponse, err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	c.logger.DebugContext(ctx, "listed projects",
		"request_id", rep.requestID,
		"project_count", len(projects),
		"duration_ms", rep.duration.Milliseconds())
	return projects, nil
}

// Create implements store.ProjectStore. The id is assigned locally at
// creation and the service is expected to echo the stored project back.
func (c *Client) Create(ctx context.Context, title, studyMaterial string) (domain.Project, error) {
	const op = "create project"

	project, err := domain.NewProject(title, studyMaterial)
	if err != nil {
		return domain.Project{}, err
	}

	rep, err := c.do(ctx, http.MethodPost, "/createPro", project)
	if failure := c.storeFailure(ctx, op, rep, err); failure != nil {
		return domain.Project{}, failure
	}

	var stored domain.Project
	if err := json.Unmarshal(rep.body, &stored); err != nil {
		return domain.Project{}, store.NewStoreError(op, rep.status, store.ErrInvalidResponse, err)
	}
	if stored.ID != project.ID {
		return domain.Project{}, store.NewStoreError(op, rep.status, store.ErrInvalidResponse,
			fmt.Errorf("stored project id %d does not match created id %d", stored.ID, project.ID))
	}

	c.logger.InfoContext(ctx, "created project",
		"request_id", rep.requestID,
		"project_id", stored.ID,
		"duration_ms", rep.duration.Milliseconds())
	return stored, nil
}

// Get implements store.ProjectStore by filtering List.
func (c *Client) Get(ctx context.Context, id int64) (domain.Project, error) {
	projects, err := c.List(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, fmt.Errorf("project %d: %w", id, store.ErrProjectNotFound)
}

// storeFailure maps a failed exchange to a store error, or returns nil when
// the reply is a usable 2xx.
func (c *Client) storeFailure(ctx context.Context, op string, rep *reply, err error) error {
	var tErr *transportError
	var storeErr *store.StoreError
	switch {
	case errors.As(err, &tErr):
		storeErr = store.NewStoreError(op, 0, store.ErrUnavailable, tErr.err)
	case err != nil:
		storeErr = store.NewStoreError(op, rep.status, store.ErrInvalidResponse, err)
	case !rep.ok():
		storeErr = store.NewStoreError(op, rep.status, store.ErrRejected, serviceDetail(rep))
	default:
		return nil
	}

	c.logger.WarnContext(ctx, "project store call failed",
		"operation", op,
		"request_id", rep.requestID,
		"status_code", rep.status,
		"duration_ms", rep.duration.Milliseconds(),
		"error", redact.Error(storeErr))
	return storeErr
}
