package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentpact.backend/internal/domain/entities"
	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/internal/domain/repositories"
	"talentpact.backend/pkg/logger"
	"talentpact.backend/pkg/metrics"
	"talentpact.backend/pkg/utils"
)

const entityProject = "project"

// TransitionRecorder counts status transition attempts
type TransitionRecorder interface {
	Transition(entity, from, to, outcome string)
}

// ProjectUsecase handles project business logic
type ProjectUsecase struct {
	projectRepo   repositories.ProjectRepository
	userRepo      repositories.UserRepository
	categoryCache repositories.CategoryCache
	recorder      TransitionRecorder
}

// NewProjectUsecase creates a new project usecase. categoryCache and
// recorder may be nil.
func NewProjectUsecase(
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	categoryCache repositories.CategoryCache,
	recorder TransitionRecorder,
) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo:   projectRepo,
		userRepo:      userRepo,
		categoryCache: categoryCache,
		recorder:      recorder,
	}
}

// CreateProject posts a new project in pending status for a client
func (u *ProjectUsecase) CreateProject(ctx context.Context, input *entities.CreateProjectInput) (*entities.Project, error) {
	clientID, err := parseID("client_id", input.ClientID)
	if err != nil {
		return nil, err
	}
	title, err := requireText("title", input.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireText("description", input.Description)
	if err != nil {
		return nil, err
	}
	category, err := requireText("category", input.Category)
	if err != nil {
		return nil, err
	}
	if input.Budget == nil {
		return nil, domainerrors.BadRequest("budget is required")
	}
	if err := validateBudget(*input.Budget); err != nil {
		return nil, err
	}

	client, err := u.userRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Client not found")
		}
		return nil, err
	}
	if client.IsFreelancer {
		return nil, domainerrors.Forbidden("freelancers cannot post projects")
	}

	project := &entities.Project{
		ID:          utils.GenerateUUIDv7(),
		ClientID:    clientID,
		Title:       title,
		Description: description,
		Category:    category,
		Budget:      *input.Budget,
		Status:      entities.ProjectStatusPending,
	}
	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	project.Client = client.Summary()

	u.invalidateCategories(ctx)
	logger.Info(ctx, "project created",
		zap.String("project_id", project.ID.String()),
		zap.String("client_id", clientID.String()),
	)
	return project, nil
}

// ListProjects returns one page of projects matching the filter and the total match count
func (u *ProjectUsecase) ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, int64, error) {
	if filter.Page == 0 {
		filter.Page = utils.DefaultPage
	}
	if filter.Limit == 0 {
		filter.Limit = utils.DefaultLimit
	}
	if err := (utils.PaginationParams{Page: filter.Page, Limit: filter.Limit}).Validate(); err != nil {
		return nil, 0, domainerrors.BadRequest(err.Error())
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, 0, invalidEnum("status", entities.ProjectStatuses())
	}
	if filter.BudgetMin != nil {
		if err := validateBound("budget_min", *filter.BudgetMin); err != nil {
			return nil, 0, err
		}
	}
	if filter.BudgetMax != nil {
		if err := validateBound("budget_max", *filter.BudgetMax); err != nil {
			return nil, 0, err
		}
	}

	return u.projectRepo.List(ctx, filter)
}

// GetProjectByID returns the project with its client summary
func (u *ProjectUsecase) GetProjectByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	return u.projectRepo.GetByID(ctx, id)
}

// UpdateProject applies the present fields of patch. A status change must be
// allowed from the current status. When requesterID is set it must be the owner.
func (u *ProjectUsecase) UpdateProject(ctx context.Context, id uuid.UUID, patch entities.ProjectPatch, requesterID *uuid.UUID) (*entities.Project, error) {
	var err error
	if patch.Title, err = trimPresent("title", patch.Title); err != nil {
		return nil, err
	}
	if patch.Description, err = trimPresent("description", patch.Description); err != nil {
		return nil, err
	}
	if patch.Category, err = trimPresent("category", patch.Category); err != nil {
		return nil, err
	}
	if patch.Budget != nil {
		if err := validateBudget(*patch.Budget); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, invalidEnum("status", entities.ProjectStatuses())
	}

	current, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if requesterID != nil && *requesterID != current.ClientID {
		return nil, domainerrors.Unauthorized("only the project owner may modify this project")
	}

	statusChange := patch.Status != nil && *patch.Status != current.Status
	if patch.Status != nil && !statusChange {
		patch.Status = nil
	}
	if statusChange && !current.Status.CanTransitionTo(*patch.Status) {
		u.recordTransition(ctx, current.ID, string(current.Status), string(*patch.Status), metrics.OutcomeRejected)
		return nil, domainerrors.InvalidTransition(string(current.Status), string(*patch.Status))
	}
	if patch.IsEmpty() {
		return current, nil
	}

	if err := u.projectRepo.Update(ctx, id, patch, current.Status); err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			if statusChange {
				u.recordTransition(ctx, current.ID, string(current.Status), string(*patch.Status), metrics.OutcomeConflict)
			}
			return nil, domainerrors.Conflict("project status changed concurrently, reload and retry")
		}
		return nil, err
	}
	if statusChange {
		u.recordTransition(ctx, current.ID, string(current.Status), string(*patch.Status), metrics.OutcomeApplied)
	}
	u.invalidateCategories(ctx)

	return u.projectRepo.GetByID(ctx, id)
}

// DeleteProject cancels a pending project. The row is kept.
func (u *ProjectUsecase) DeleteProject(ctx context.Context, id uuid.UUID, requesterID *uuid.UUID) error {
	current, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if requesterID != nil && *requesterID != current.ClientID {
		return domainerrors.Unauthorized("only the project owner may delete this project")
	}

	from, to := string(current.Status), string(entities.ProjectStatusCancelled)
	if current.Status != entities.ProjectStatusPending {
		u.recordTransition(ctx, current.ID, from, to, metrics.OutcomeRejected)
		return domainerrors.InvalidState("only pending projects may be deleted")
	}

	err = u.projectRepo.UpdateStatus(ctx, id, entities.ProjectStatusPending, entities.ProjectStatusCancelled)
	if err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			u.recordTransition(ctx, current.ID, from, to, metrics.OutcomeConflict)
			return domainerrors.InvalidState("only pending projects may be deleted")
		}
		return err
	}

	u.recordTransition(ctx, current.ID, from, to, metrics.OutcomeApplied)
	u.invalidateCategories(ctx)
	return nil
}

// ListProjectsByClient returns every project of a client, newest first
func (u *ProjectUsecase) ListProjectsByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.Project, error) {
	return u.projectRepo.ListByClient(ctx, clientID)
}

// ListCategories returns the sorted distinct categories of live projects.
// Cache failures fall back to the store.
func (u *ProjectUsecase) ListCategories(ctx context.Context) ([]string, error) {
	if u.categoryCache != nil {
		cached, ok, err := u.categoryCache.Get(ctx)
		if err != nil {
			logger.Warn(ctx, "category cache read failed", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	categories, err := u.projectRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if u.categoryCache != nil {
		if err := u.categoryCache.Set(ctx, categories); err != nil {
			logger.Warn(ctx, "category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

func (u *ProjectUsecase) invalidateCategories(ctx context.Context) {
	if u.categoryCache == nil {
		return
	}
	if err := u.categoryCache.Invalidate(ctx); err != nil {
		logger.Warn(ctx, "category cache invalidation failed", zap.Error(err))
	}
}

func (u *ProjectUsecase) recordTransition(ctx context.Context, id uuid.UUID, from, to, outcome string) {
	logger.LogTransition(ctx, entityProject, id.String(), from, to, outcome == metrics.OutcomeApplied)
	if u.recorder != nil {
		u.recorder.Transition(entityProject, from, to, outcome)
	}
}
