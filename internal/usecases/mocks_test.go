package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"talentpact.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) ExistAll(ctx context.Context, ids ...uuid.UUID) (bool, error) {
	args := m.Called(ctx, ids)
	return args.Bool(0), args.Error(1)
}

// Mock ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.Project, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, id uuid.UUID, patch entities.ProjectPatch, expected entities.ProjectStatus) error {
	args := m.Called(ctx, id, patch, expected)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entities.ProjectStatus) error {
	args := m.Called(ctx, id, expected, next)
	return args.Error(0)
}

// Mock CategoryCache
type MockCategoryCache struct {
	mock.Mock
}

func (m *MockCategoryCache) Get(ctx context.Context) ([]string, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]string), args.Bool(1), args.Error(2)
}

func (m *MockCategoryCache) Set(ctx context.Context, categories []string) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockCategoryCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Mock ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Create(ctx context.Context, contract *entities.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Contract), args.Error(1)
}

func (m *MockContractRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Contract, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Contract), args.Error(1)
}

func (m *MockContractRepository) ListByStatus(ctx context.Context, status entities.EscrowStatus) ([]*entities.Contract, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Contract), args.Error(1)
}

func (m *MockContractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entities.EscrowStatus) error {
	args := m.Called(ctx, id, expected, next)
	return args.Error(0)
}

// recorder captures transition outcomes
type recorder struct {
	events []string
}

func (r *recorder) Transition(entity, from, to, outcome string) {
	r.events = append(r.events, entity+":"+from+"->"+to+":"+outcome)
}
