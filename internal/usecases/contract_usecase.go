package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"talentpact.backend/internal/domain/entities"
	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/internal/domain/repositories"
	"talentpact.backend/pkg/logger"
	"talentpact.backend/pkg/metrics"
	"talentpact.backend/pkg/utils"
)

const entityContract = "contract"

// ContractUsecase handles escrow contract business logic
type ContractUsecase struct {
	contractRepo repositories.ContractRepository
	projectRepo  repositories.ProjectRepository
	userRepo     repositories.UserRepository
	uow          repositories.UnitOfWork
	recorder     TransitionRecorder
}

// NewContractUsecase creates a new contract usecase
func NewContractUsecase(
	contractRepo repositories.ContractRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	recorder TransitionRecorder,
) *ContractUsecase {
	return &ContractUsecase{
		contractRepo: contractRepo,
		projectRepo:  projectRepo,
		userRepo:     userRepo,
		uow:          uow,
		recorder:     recorder,
	}
}

// CreateContract opens a contract in pending escrow status
func (u *ContractUsecase) CreateContract(ctx context.Context, input *entities.CreateContractInput) (*entities.Contract, error) {
	freelancerRaw := strings.TrimSpace(input.FreelancerID)
	clientRaw := strings.TrimSpace(input.ClientID)
	if freelancerRaw != "" && strings.EqualFold(freelancerRaw, clientRaw) {
		return nil, domainerrors.BadRequest("freelancer_id and client_id must be different users")
	}

	freelancerID, err := parseID("freelancer_id", freelancerRaw)
	if err != nil {
		return nil, err
	}
	clientID, err := parseID("client_id", clientRaw)
	if err != nil {
		return nil, err
	}
	if freelancerID == clientID {
		return nil, domainerrors.BadRequest("freelancer_id and client_id must be different users")
	}

	contractType := entities.ContractType(strings.TrimSpace(input.ContractType))
	if !contractType.IsValid() {
		return nil, invalidEnum("contract_type", []entities.ContractType{entities.ContractTypeProject, entities.ContractTypeService})
	}
	if input.AmountLocked == nil {
		return nil, domainerrors.BadRequest("amount_locked is required")
	}
	if err := validateAmountLocked(*input.AmountLocked); err != nil {
		return nil, err
	}
	onChainID, err := requireText("contract_on_chain_id", input.ContractOnChainID)
	if err != nil {
		return nil, err
	}

	projectRef, err := optionalRef("project_id", input.ProjectID)
	if err != nil {
		return nil, err
	}
	serviceRef, err := optionalRef("service_request_id", input.ServiceRequestID)
	if err != nil {
		return nil, err
	}

	contract := &entities.Contract{
		ID:                utils.GenerateUUIDv7(),
		ContractType:      contractType,
		FreelancerID:      freelancerID,
		ClientID:          clientID,
		ProjectID:         projectRef,
		ServiceRequestID:  serviceRef,
		ContractOnChainID: onChainID,
		AmountLocked:      *input.AmountLocked,
		EscrowStatus:      entities.EscrowStatusPending,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		ok, err := u.userRepo.ExistAll(txCtx, freelancerID, clientID)
		if err != nil {
			return err
		}
		if !ok {
			return domainerrors.NotFound("Freelancer or client not found")
		}
		if err := checkReference(contractType, projectRef, serviceRef); err != nil {
			return err
		}

		if contractType == entities.ContractTypeProject {
			projectID, _ := uuid.Parse(projectRef.String)
			if _, err := u.projectRepo.GetByID(txCtx, projectID); err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					return domainerrors.NotFound("Project not found")
				}
				return err
			}
		}

		return u.contractRepo.Create(txCtx, contract)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "contract created",
		zap.String("contract_id", contract.ID.String()),
		zap.String("contract_type", string(contractType)),
	)

	return u.contractRepo.GetByID(ctx, contract.ID)
}

// checkReference enforces that exactly the reference matching the contract type is set.
// It runs after the participant lookup so unknown users report NotFound first.
func checkReference(contractType entities.ContractType, projectRef, serviceRef null.String) error {
	if projectRef.Valid && serviceRef.Valid {
		return domainerrors.BadRequest("only one of project_id or service_request_id may be set")
	}
	switch contractType {
	case entities.ContractTypeProject:
		if !projectRef.Valid {
			return domainerrors.BadRequest("project_id is required for project contracts")
		}
	case entities.ContractTypeService:
		if !serviceRef.Valid {
			return domainerrors.BadRequest("service_request_id is required for service contracts")
		}
	}
	return nil
}

// GetContractByID returns the contract with both participant summaries
func (u *ContractUsecase) GetContractByID(ctx context.Context, id uuid.UUID) (*entities.Contract, error) {
	return u.contractRepo.GetByID(ctx, id)
}

// UpdateContractStatus moves the escrow to next on behalf of a participant
func (u *ContractUsecase) UpdateContractStatus(ctx context.Context, id uuid.UUID, next entities.EscrowStatus, requesterID uuid.UUID) (*entities.Contract, error) {
	if !next.IsSettable() {
		return nil, invalidEnum("escrow_status", entities.SettableEscrowStatuses())
	}

	current, err := u.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.IsParticipant(requesterID) {
		return nil, domainerrors.Unauthorized("only contract participants may change its status")
	}

	from, to := string(current.EscrowStatus), string(next)
	if !current.EscrowStatus.CanTransitionTo(next) {
		u.recordTransition(ctx, id, from, to, metrics.OutcomeRejected)
		return nil, domainerrors.InvalidTransition(from, to)
	}

	if err := u.contractRepo.UpdateStatus(ctx, id, current.EscrowStatus, next); err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			u.recordTransition(ctx, id, from, to, metrics.OutcomeConflict)
			return nil, domainerrors.Conflict("escrow status changed concurrently, reload and retry")
		}
		return nil, err
	}
	u.recordTransition(ctx, id, from, to, metrics.OutcomeApplied)

	return u.contractRepo.GetByID(ctx, id)
}

// ListContractsByUser returns the contracts a user takes part in, each
// carrying the other participant's summary
func (u *ContractUsecase) ListContractsByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Contract, error) {
	contracts, err := u.contractRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range contracts {
		c.Counterpart = c.CounterpartOf(userID)
	}
	return contracts, nil
}

// ListContractsByStatus returns every contract in the given escrow status
func (u *ContractUsecase) ListContractsByStatus(ctx context.Context, status entities.EscrowStatus) ([]*entities.Contract, error) {
	if !status.IsValid() {
		return nil, invalidEnum("status", entities.EscrowStatuses())
	}
	return u.contractRepo.ListByStatus(ctx, status)
}

func (u *ContractUsecase) recordTransition(ctx context.Context, id uuid.UUID, from, to, outcome string) {
	logger.LogTransition(ctx, entityContract, id.String(), from, to, outcome == metrics.OutcomeApplied)
	if u.recorder != nil {
		u.recorder.Transition(entityContract, from, to, outcome)
	}
}
