package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"talentpact.backend/internal/domain/entities"
	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/internal/infrastructure/models"
)

// UserRepository implements read-only user lookups
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// ExistAll reports whether every given id belongs to a user, in one query
func (r *UserRepository) ExistAll(ctx context.Context, ids ...uuid.UUID) (bool, error) {
	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	if len(unique) == 0 {
		return true, nil
	}
	keys := make([]uuid.UUID, 0, len(unique))
	for id := range unique {
		keys = append(keys, id)
	}

	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id IN ?", keys).Count(&count).Error; err != nil {
		return false, err
	}
	return count == int64(len(keys)), nil
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Name:         m.Name,
		Username:     m.Username,
		Email:        m.Email,
		IsFreelancer: m.IsFreelancer,
		CreatedAt:    m.CreatedAt,
	}
}

func userSummary(m *models.User) *entities.UserSummary {
	if m == nil {
		return nil
	}
	return &entities.UserSummary{ID: m.ID, Name: m.Name, Username: m.Username, Email: m.Email}
}

// rowMissingOrStale explains why a conditional update matched no row
func rowMissingOrStale(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID) error {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerrors.ErrNotFound
	}
	return domainerrors.ErrConflict
}
