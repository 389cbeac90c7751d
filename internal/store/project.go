package store

import (
	"context"

	"github.com/phrazzld/studyaid/internal/domain"
)

// ProjectStore defines the interface for project persistence.
type ProjectStore interface {
	// List returns every stored project in the order the store reports them.
	// An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]domain.Project, error)

	// Create builds a project from the given title and material and saves it.
	// Blank input fails with ErrEmptyTitleOrMaterial before any I/O.
	Create(ctx context.Context, title, studyMaterial string) (domain.Project, error)

	// Get returns the project with the given id.
	// Returns ErrProjectNotFound if no such project exists.
	Get(ctx context.Context, id int64) (domain.Project, error)
}
