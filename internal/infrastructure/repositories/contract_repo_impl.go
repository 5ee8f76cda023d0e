package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"talentpact.backend/internal/domain/entities"
	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/internal/infrastructure/models"
)

// ContractRepository implements contract data operations
type ContractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// Create inserts a contract
func (r *ContractRepository) Create(ctx context.Context, contract *entities.Contract) error {
	m, err := contractToModel(contract)
	if err != nil {
		return err
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	contract.ID = m.ID
	contract.CreatedAt = m.CreatedAt
	contract.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a contract with both participant summaries
func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Contract, error) {
	var m models.Contract
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Freelancer").
		Preload("Client").
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return contractToEntity(&m), nil
}

// ListByUser returns the contracts a user takes part in, newest first
func (r *ContractRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Contract, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("freelancer_id = ? OR client_id = ?", userID, userID)
	})
}

// ListByStatus returns the contracts in an escrow status, newest first
func (r *ContractRepository) ListByStatus(ctx context.Context, status entities.EscrowStatus) ([]*entities.Contract, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("escrow_status = ?", string(status))
	})
}

// UpdateStatus moves escrow_status from expected to next in a single conditional write
func (r *ContractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entities.EscrowStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("id = ? AND escrow_status = ?", id, string(expected)).
		Updates(map[string]interface{}{
			"escrow_status": string(next),
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rowMissingOrStale(ctx, db, &models.Contract{}, id)
	}
	return nil
}

func (r *ContractRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*entities.Contract, error) {
	var ms []models.Contract
	if err := scope(GetDB(ctx, r.db).WithContext(ctx)).
		Preload("Freelancer").
		Preload("Client").
		Order("created_at DESC").
		Order("id DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Contract, 0, len(ms))
	for i := range ms {
		items = append(items, contractToEntity(&ms[i]))
	}
	return items, nil
}

func contractToEntity(m *models.Contract) *entities.Contract {
	return &entities.Contract{
		ID:                m.ID,
		ContractType:      entities.ContractType(m.ContractType),
		FreelancerID:      m.FreelancerID,
		ClientID:          m.ClientID,
		ProjectID:         uuidToNullString(m.ProjectID),
		ServiceRequestID:  uuidToNullString(m.ServiceRequestID),
		ContractOnChainID: m.ContractOnChainID,
		AmountLocked:      m.AmountLocked,
		EscrowStatus:      entities.EscrowStatus(m.EscrowStatus),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		Freelancer:        userSummary(m.Freelancer),
		Client:            userSummary(m.Client),
	}
}

func contractToModel(e *entities.Contract) (*models.Contract, error) {
	projectID, err := nullStringToUUID(e.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("project_id: %w", domainerrors.ErrInvalidInput)
	}
	serviceRequestID, err := nullStringToUUID(e.ServiceRequestID)
	if err != nil {
		return nil, fmt.Errorf("service_request_id: %w", domainerrors.ErrInvalidInput)
	}
	return &models.Contract{
		ID:                e.ID,
		ContractType:      string(e.ContractType),
		FreelancerID:      e.FreelancerID,
		ClientID:          e.ClientID,
		ProjectID:         projectID,
		ServiceRequestID:  serviceRequestID,
		ContractOnChainID: e.ContractOnChainID,
		AmountLocked:      e.AmountLocked,
		EscrowStatus:      string(e.EscrowStatus),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}, nil
}

func uuidToNullString(id *uuid.UUID) null.String {
	if id == nil {
		return null.String{}
	}
	return null.StringFrom(id.String())
}

func nullStringToUUID(s null.String) (*uuid.UUID, error) {
	if !s.Valid {
		return nil, nil
	}
	id, err := uuid.Parse(s.String)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
