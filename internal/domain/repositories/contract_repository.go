package repositories

import (
	"context"

	"github.com/google/uuid"
	"talentpact.backend/internal/domain/entities"
)

// ContractRepository defines contract data operations
type ContractRepository interface {
	Create(ctx context.Context, contract *entities.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Contract, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Contract, error)
	ListByStatus(ctx context.Context, status entities.EscrowStatus) ([]*entities.Contract, error)
	// UpdateStatus is a compare-and-swap on escrow_status
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entities.EscrowStatus) error
}
