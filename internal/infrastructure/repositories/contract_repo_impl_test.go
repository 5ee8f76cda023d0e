package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"talentpact.backend/internal/domain/entities"
	domainerrors "talentpact.backend/internal/domain/errors"
)

func newContract(freelancer, client uuid.UUID, createdAt time.Time) *entities.Contract {
	return &entities.Contract{
		ID:                uuid.New(),
		ContractType:      entities.ContractTypeService,
		FreelancerID:      freelancer,
		ClientID:          client,
		ServiceRequestID:  null.StringFrom(uuid.NewString()),
		ContractOnChainID: "0xabc",
		AmountLocked:      42.5,
		EscrowStatus:      entities.EscrowStatusPending,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
}

func TestContractRepository_CreateGetUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createContractTable(t, db)
	repo := NewContractRepository(db)
	ctx := context.Background()

	freelancer := seedUser(t, db, "hank", true)
	client := seedUser(t, db, "ivy", false)
	c := newContract(freelancer, client, time.Now())
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ContractTypeService, got.ContractType)
	require.Equal(t, c.ServiceRequestID.String, got.ServiceRequestID.String)
	require.False(t, got.ProjectID.Valid)
	require.Equal(t, "hank", got.Freelancer.Username)
	require.Equal(t, "ivy", got.Client.Username)
	require.Equal(t, 42.5, got.AmountLocked)

	require.NoError(t, repo.UpdateStatus(ctx, c.ID, entities.EscrowStatusPending, entities.EscrowStatusFunded))
	err = repo.UpdateStatus(ctx, c.ID, entities.EscrowStatusPending, entities.EscrowStatusDisputed)
	require.ErrorIs(t, err, domainerrors.ErrConflict)
	err = repo.UpdateStatus(ctx, uuid.New(), entities.EscrowStatusPending, entities.EscrowStatusFunded)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	got, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, entities.EscrowStatusFunded, got.EscrowStatus)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContractRepository_ListByUserAndStatus(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createContractTable(t, db)
	repo := NewContractRepository(db)
	ctx := context.Background()

	f1 := seedUser(t, db, "jay", true)
	f2 := seedUser(t, db, "kim", true)
	client := seedUser(t, db, "lee", false)
	now := time.Now()

	first := newContract(f1, client, now.Add(-time.Minute))
	second := newContract(f2, client, now)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.UpdateStatus(ctx, second.ID, entities.EscrowStatusPending, entities.EscrowStatusFunded))

	byClient, err := repo.ListByUser(ctx, client)
	require.NoError(t, err)
	require.Len(t, byClient, 2)
	require.Equal(t, second.ID, byClient[0].ID)

	byFreelancer, err := repo.ListByUser(ctx, f1)
	require.NoError(t, err)
	require.Len(t, byFreelancer, 1)
	require.Equal(t, "lee", byFreelancer[0].Client.Username)

	funded, err := repo.ListByStatus(ctx, entities.EscrowStatusFunded)
	require.NoError(t, err)
	require.Len(t, funded, 1)
	require.Equal(t, second.ID, funded[0].ID)

	released, err := repo.ListByStatus(ctx, entities.EscrowStatusReleased)
	require.NoError(t, err)
	require.Empty(t, released)
}

func TestContractRepository_RejectsMalformedReference(t *testing.T) {
	db := newTestDB(t)
	createContractTable(t, db)
	repo := NewContractRepository(db)

	c := newContract(uuid.New(), uuid.New(), time.Now())
	c.ProjectID = null.StringFrom("not-a-uuid")
	err := repo.Create(context.Background(), c)
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestContractRepository_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	repo := NewContractRepository(db)
	ctx := context.Background()

	require.Error(t, repo.Create(ctx, newContract(uuid.New(), uuid.New(), time.Now())))
	_, err := repo.GetByID(ctx, uuid.New())
	require.Error(t, err)
	_, err = repo.ListByUser(ctx, uuid.New())
	require.Error(t, err)
	_, err = repo.ListByStatus(ctx, entities.EscrowStatusPending)
	require.Error(t, err)
	require.Error(t, repo.UpdateStatus(ctx, uuid.New(), entities.EscrowStatusPending, entities.EscrowStatusFunded))
}
