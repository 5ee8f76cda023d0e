package repositories

import (
	"context"

	"github.com/google/uuid"
	"talentpact.backend/internal/domain/entities"
)

// ProjectRepository defines project data operations.
// Update and UpdateStatus only apply when the stored status still equals
// expected; a lost race yields ErrConflict, a missing row ErrNotFound.
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	List(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, int64, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.Project, error)
	ListCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id uuid.UUID, patch entities.ProjectPatch, expected entities.ProjectStatus) error
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entities.ProjectStatus) error
}

// CategoryCache caches the distinct category listing
type CategoryCache interface {
	Get(ctx context.Context) ([]string, bool, error)
	Set(ctx context.Context, categories []string) error
	Invalidate(ctx context.Context) error
}
