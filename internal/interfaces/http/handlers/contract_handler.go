package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"talentpact.backend/internal/domain/entities"
	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/internal/interfaces/http/middleware"
	"talentpact.backend/internal/interfaces/http/response"
	"talentpact.backend/pkg/utils"
)

type ContractService interface {
	CreateContract(ctx context.Context, input *entities.CreateContractInput) (*entities.Contract, error)
	GetContractByID(ctx context.Context, id uuid.UUID) (*entities.Contract, error)
	UpdateContractStatus(ctx context.Context, id uuid.UUID, next entities.EscrowStatus, requesterID uuid.UUID) (*entities.Contract, error)
	ListContractsByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Contract, error)
	ListContractsByStatus(ctx context.Context, status entities.EscrowStatus) ([]*entities.Contract, error)
}

// ContractHandler handles escrow contract endpoints
type ContractHandler struct {
	contractService ContractService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// CreateContract opens a contract
// POST /api/v1/contracts
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var input entities.CreateContractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, bindError(err))
		return
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Contract created successfully", contract)
}

// GetContract gets a contract by ID
// GET /api/v1/contracts/:id
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	contract, err := h.contractService.GetContractByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, notFoundAs(err, "Contract not found"))
		return
	}

	response.Success(c, http.StatusOK, "Contract fetched successfully", contract)
}

// UpdateContractStatus moves the escrow status. The acting user comes from
// the bearer token; a body user_id must match it.
// PUT /api/v1/contracts/:id/status
func (h *ContractHandler) UpdateContractStatus(c *gin.Context) {
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

	var input entities.UpdateContractStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if strings.TrimSpace(input.UserID) != "" {
		claimed, err := utils.ParseUUID("user_id", input.UserID)
		if err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
		if claimed != requesterID {
			response.Error(c, domainerrors.Unauthorized("user_id does not match the authenticated user"))
			return
		}
	}

	next := entities.EscrowStatus(strings.TrimSpace(input.EscrowStatus))
	contract, err := h.contractService.UpdateContractStatus(c.Request.Context(), id, next, requesterID)
	if err != nil {
		response.Error(c, notFoundAs(err, "Contract not found"))
		return
	}

	response.Success(c, http.StatusOK, "Contract status updated successfully", contract)
}

// ListContractsByUser lists the contracts a user takes part in
// GET /api/v1/contracts/user/:userId
func (h *ContractHandler) ListContractsByUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	contracts, err := h.contractService.ListContractsByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Contracts fetched successfully", contracts)
}

// ListContractsByStatus lists contracts in one escrow status
// GET /api/v1/contracts/status/:status
func (h *ContractHandler) ListContractsByStatus(c *gin.Context) {
	status := entities.EscrowStatus(strings.TrimSpace(c.Param("status")))

	contracts, err := h.contractService.ListContractsByStatus(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Contracts fetched successfully", contracts)
}
