package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/store"
)

// MockProjectStore implements store.ProjectStore for testing with an
// in-memory project list.
type MockProjectStore struct {
	// Function fields for customizable behavior
	ListFn   func(ctx context.Context) ([]domain.Project, error)
	CreateFn func(ctx context.Context, title, studyMaterial string) (domain.Project, error)
	GetFn    func(ctx context.Context, id int64) (domain.Project, error)

	// Errors returned by the default implementation when set
	ListError   error
	CreateError error

	mu       sync.Mutex
	projects []domain.Project
}

var _ store.ProjectStore = (*MockProjectStore)(nil)

// NewMockProjectStore creates a store holding projects.
func NewMockProjectStore(projects ...domain.Project) *MockProjectStore {
	return &MockProjectStore{projects: append([]domain.Project{}, projects...)}
}

// List implements store.ProjectStore.
func (m *MockProjectStore) List(ctx context.Context) ([]domain.Project, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.ListError != nil {
		return nil, m.ListError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Project{}, m.projects...), nil
}

// Create implements store.ProjectStore.
func (m *MockProjectStore) Create(ctx context.Context, title, studyMaterial string) (domain.Project, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, title, studyMaterial)
	}

	p, err := domain.NewProject(title, studyMaterial)
	if err != nil {
		return domain.Project{}, err
	}
	if m.CreateError != nil {
		return domain.Project{}, m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects = append(m.projects, *p)
	return *p, nil
}

// Get implements store.ProjectStore.
func (m *MockProjectStore) Get(ctx context.Context, id int64) (domain.Project, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}

	projects, err := m.List(ctx)
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
