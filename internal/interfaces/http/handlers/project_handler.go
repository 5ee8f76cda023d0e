package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"talentpact.backend/internal/domain/entities"
	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/internal/interfaces/http/middleware"
	"talentpact.backend/internal/interfaces/http/response"
	"talentpact.backend/pkg/utils"
)

type ProjectService interface {
	CreateProject(ctx context.Context, input *entities.CreateProjectInput) (*entities.Project, error)
	ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, int64, error)
	GetProjectByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, patch entities.ProjectPatch, requesterID *uuid.UUID) (*entities.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID, requesterID *uuid.UUID) error
	ListProjectsByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.Project, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectService ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProject posts a project
// POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input entities.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, bindError(err))
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Project created successfully", project)
}

// ListProjects lists projects
// GET /api/v1/projects?category=&budget_min=&budget_max=&status=&page=&limit=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, err := utils.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	filter := entities.ProjectFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Page:     page.Page,
		Limit:    page.Limit,
	}
	if filter.BudgetMin, err = queryFloat(c, "budget_min"); err != nil {
		response.Error(c, err)
		return
	}
	if filter.BudgetMax, err = queryFloat(c, "budget_max"); err != nil {
		response.Error(c, err)
		return
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := entities.ProjectStatus(raw)
		filter.Status = &status
	}

	projects, total, err := h.projectService.ListProjects(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Projects fetched successfully", projects, utils.CalculateMeta(total, page.Page, page.Limit))
}

// GetProject gets a project by ID
// GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, notFoundAs(err, "Project not found"))
		return
	}

	response.Success(c, http.StatusOK, "Project fetched successfully", project)
}

// UpdateProject edits fields and/or moves the status of an owned project
// PUT /api/v1/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthenticated("User not authenticated"))
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request body"))
		return
	}
	patch, err := decodeProjectPatch(body)
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, patch, &requesterID)
	if err != nil {
		response.Error(c, notFoundAs(err, "Project not found"))
		return
	}

	response.Success(c, http.StatusOK, "Project updated successfully", project)
}

// DeleteProject cancels a pending project
// DELETE /api/v1/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthenticated("User not authenticated"))
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id, &requesterID); err != nil {
		response.Error(c, notFoundAs(err, "Project not found"))
		return
	}

	response.Success(c, http.StatusOK, "Project deleted successfully", nil)
}

// ListProjectsByClient lists every project of a client
// GET /api/v1/projects/client/:clientId
func (h *ProjectHandler) ListProjectsByClient(c *gin.Context) {
	clientID, err := pathID(c, "clientId")
	if err != nil {
		response.Error(c, err)
		return
	}

	projects, err := h.projectService.ListProjectsByClient(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Projects fetched successfully", projects)
}

// ListCategories lists the categories in use
// GET /api/v1/projects/categories
func (h *ProjectHandler) ListCategories(c *gin.Context) {
	categories, err := h.projectService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Categories fetched successfully", categories)
}

func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.BadRequest(name + " must be a number")
	}
	return &v, nil
}

// decodeProjectPatch reads only the keys present in the body. An explicit
// null is rejected since none of the editable columns is nullable.
func decodeProjectPatch(body map[string]json.RawMessage) (entities.ProjectPatch, error) {
	var patch entities.ProjectPatch

	text := func(key string) (*string, error) {
		raw, ok := body[key]
		if !ok {
			return nil, nil
		}
		var v *string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, domainerrors.BadRequest(key + " must be a string")
		}
		if v == nil {
			return nil, domainerrors.BadRequest(key + " cannot be null")
		}
		return v, nil
	}

	var err error
	if patch.Title, err = text("title"); err != nil {
		return patch, err
	}
	if patch.Description, err = text("description"); err != nil {
		return patch, err
	}
	if patch.Category, err = text("category"); err != nil {
		return patch, err
	}

	status, err := text("status")
	if err != nil {
		return patch, err
	}
	if status != nil {
		s := entities.ProjectStatus(strings.TrimSpace(*status))
		patch.Status = &s
	}

	if raw, ok := body["budget"]; ok {
		var v *float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return patch, domainerrors.BadRequest("budget must be a number")
		}
		if v == nil {
			return patch, domainerrors.BadRequest("budget cannot be null")
		}
		patch.Budget = v
	}

	return patch, nil
}
