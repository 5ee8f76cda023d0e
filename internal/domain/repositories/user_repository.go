package repositories

import (
	"context"

	"github.com/google/uuid"
	"talentpact.backend/internal/domain/entities"
)

// UserRepository reads users owned by the account system
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	// ExistAll reports whether every id resolves to a user
	ExistAll(ctx context.Context, ids ...uuid.UUID) (bool, error)
}
