package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"talentpact.backend/internal/domain/entities"
	"talentpact.backend/internal/interfaces/http/middleware"
)

type stubProjectService struct {
	create       func(context.Context, *entities.CreateProjectInput) (*entities.Project, error)
	list         func(context.Context, entities.ProjectFilter) ([]*entities.Project, int64, error)
	get          func(context.Context, uuid.UUID) (*entities.Project, error)
	update       func(context.Context, uuid.UUID, entities.ProjectPatch, *uuid.UUID) (*entities.Project, error)
	remove       func(context.Context, uuid.UUID, *uuid.UUID) error
	listByClient func(context.Context, uuid.UUID) ([]*entities.Project, error)
	categories   func(context.Context) ([]string, error)
}

func (s *stubProjectService) CreateProject(ctx context.Context, in *entities.CreateProjectInput) (*entities.Project, error) {
	return s.create(ctx, in)
}

func (s *stubProjectService) ListProjects(ctx context.Context, f entities.ProjectFilter) ([]*entities.Project, int64, error) {
	return s.list(ctx, f)
}

func (s *stubProjectService) GetProjectByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	return s.get(ctx, id)
}

func (s *stubProjectService) UpdateProject(ctx context.Context, id uuid.UUID, p entities.ProjectPatch, r *uuid.UUID) (*entities.Project, error) {
	return s.update(ctx, id, p, r)
}

func (s *stubProjectService) DeleteProject(ctx context.Context, id uuid.UUID, r *uuid.UUID) error {
	return s.remove(ctx, id, r)
}

func (s *stubProjectService) ListProjectsByClient(ctx context.Context, id uuid.UUID) ([]*entities.Project, error) {
	return s.listByClient(ctx, id)
}

func (s *stubProjectService) ListCategories(ctx context.Context) ([]string, error) {
	return s.categories(ctx)
}

type stubContractService struct {
	create       func(context.Context, *entities.CreateContractInput) (*entities.Contract, error)
	get          func(context.Context, uuid.UUID) (*entities.Contract, error)
	updateStatus func(context.Context, uuid.UUID, entities.EscrowStatus, uuid.UUID) (*entities.Contract, error)
	listByUser   func(context.Context, uuid.UUID) ([]*entities.Contract, error)
	listByStatus func(context.Context, entities.EscrowStatus) ([]*entities.Contract, error)
}

func (s *stubContractService) CreateContract(ctx context.Context, in *entities.CreateContractInput) (*entities.Contract, error) {
	return s.create(ctx, in)
}

func (s *stubContractService) GetContractByID(ctx context.Context, id uuid.UUID) (*entities.Contract, error) {
	return s.get(ctx, id)
}

func (s *stubContractService) UpdateContractStatus(ctx context.Context, id uuid.UUID, next entities.EscrowStatus, r uuid.UUID) (*entities.Contract, error) {
	return s.updateStatus(ctx, id, next, r)
}

func (s *stubContractService) ListContractsByUser(ctx context.Context, id uuid.UUID) ([]*entities.Contract, error) {
	return s.listByUser(ctx, id)
}

func (s *stubContractService) ListContractsByStatus(ctx context.Context, st entities.EscrowStatus) ([]*entities.Contract, error) {
	return s.listByStatus(ctx, st)
}

// asUser stands in for AuthMiddleware
func asUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != uuid.Nil {
			c.Set(middleware.UserIDKey, id)
		}
		c.Next()
	}
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalCount int64 `json:"totalCount"`
		TotalPages int   `json:"totalPages"`
	} `json:"pagination"`
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, w.Body.String())
	}
	return w.Code, env
}
