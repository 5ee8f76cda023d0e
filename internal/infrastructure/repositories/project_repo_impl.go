package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"talentpact.backend/internal/domain/entities"
	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/internal/infrastructure/models"
	"talentpact.backend/pkg/utils"
)

// ProjectRepository implements project data operations
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project. The caller decides the initial status.
func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	m := projectToModel(project)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	project.ID = m.ID
	project.CreatedAt = m.CreatedAt
	project.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a project with its client summary
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	if err := GetDB(ctx, r.db).WithContext(ctx).Preload("Client").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return projectToEntity(&m), nil
}

// List returns one page of filtered projects, newest first, with the total match count
func (r *ProjectRepository) List(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := applyProjectFilter(db.WithContext(ctx).Model(&models.Project{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := applyProjectFilter(db.WithContext(ctx).Model(&models.Project{}), filter).
		Preload("Client").
		Order("created_at DESC").
		Order("id DESC")
	if filter.Limit > 0 {
		page := utils.PaginationParams{Page: filter.Page, Limit: filter.Limit}
		query = query.Limit(page.Limit).Offset(page.Offset())
	}

	var ms []models.Project
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		items = append(items, projectToEntity(&ms[i]))
	}
	return items, total, nil
}

// ListByClient returns every project of a client, newest first
func (r *ProjectRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.Project, error) {
	var ms []models.Project
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		items = append(items, projectToEntity(&ms[i]))
	}
	return items, nil
}

// ListCategories returns the sorted distinct categories of non-cancelled projects
func (r *ProjectRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Project{}).
		Where("status <> ?", string(entities.ProjectStatusCancelled)).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// Update writes the fields present in patch, provided the status is still expected
func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, patch entities.ProjectPatch, expected entities.ProjectStatus) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Budget != nil {
		updates["budget"] = *patch.Budget
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rowMissingOrStale(ctx, db, &models.Project{}, id)
	}
	return nil
}

// UpdateStatus moves a project from expected to next in a single conditional write
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entities.ProjectStatus) error {
	status := next
	return r.Update(ctx, id, entities.ProjectPatch{Status: &status}, expected)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes the LIKE wildcards in v match literally
func escapeLike(v string) string {
	return likeEscaper.Replace(v)
}

func applyProjectFilter(query *gorm.DB, filter entities.ProjectFilter) *gorm.DB {
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where(`LOWER(category) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(category))+"%")
	}
	if filter.BudgetMin != nil {
		query = query.Where("budget >= ?", *filter.BudgetMin)
	}
	if filter.BudgetMax != nil {
		query = query.Where("budget <= ?", *filter.BudgetMax)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	return query
}

func projectToEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Budget:      m.Budget,
		Status:      entities.ProjectStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Client:      userSummary(m.Client),
	}
}

func projectToModel(e *entities.Project) *models.Project {
	return &models.Project{
		ID:          e.ID,
		ClientID:    e.ClientID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Budget:      e.Budget,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
