package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ContractType tells which kind of work a contract is bound to
type ContractType string

const (
	ContractTypeProject ContractType = "project"
	ContractTypeService ContractType = "service"
)

// IsValid reports whether the contract type is known
func (t ContractType) IsValid() bool {
	return t == ContractTypeProject || t == ContractTypeService
}

// EscrowStatus represents the stage of the funds notionally held for a contract
type EscrowStatus string

const (
	EscrowStatusPending  EscrowStatus = "pending"
	EscrowStatusFunded   EscrowStatus = "funded"
	EscrowStatusReleased EscrowStatus = "released"
	EscrowStatusDisputed EscrowStatus = "disputed"
)

// Contract represents an escrow agreement between a freelancer and a client.
// Exactly one of ProjectID and ServiceRequestID is valid, chosen by ContractType.
type Contract struct {
	ID                uuid.UUID    `json:"id"`
	ContractType      ContractType `json:"contract_type"`
	FreelancerID      uuid.UUID    `json:"freelancer_id"`
	ClientID          uuid.UUID    `json:"client_id"`
	ProjectID         null.String  `json:"project_id"`
	ServiceRequestID  null.String  `json:"service_request_id"`
	ContractOnChainID string       `json:"contract_on_chain_id"`
	AmountLocked      float64      `json:"amount_locked"`
	EscrowStatus      EscrowStatus `json:"escrow_status"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
	Freelancer        *UserSummary `json:"freelancer,omitempty"`
	Client            *UserSummary `json:"client,omitempty"`
	Counterpart       *UserSummary `json:"counterpart,omitempty"`
}

// IsParticipant reports whether the user is the freelancer or the client
func (c *Contract) IsParticipant(userID uuid.UUID) bool {
	return userID != uuid.Nil && (c.FreelancerID == userID || c.ClientID == userID)
}

// CounterpartOf returns the summary of the other participant
func (c *Contract) CounterpartOf(userID uuid.UUID) *UserSummary {
	switch userID {
	case c.FreelancerID:
		return c.Client
	case c.ClientID:
		return c.Freelancer
	}
	return nil
}

// CreateContractInput represents input for opening a contract
type CreateContractInput struct {
	ContractType      string   `json:"contract_type" binding:"required"`
	FreelancerID      string   `json:"freelancer_id" binding:"required"`
	ClientID          string   `json:"client_id" binding:"required"`
	ContractOnChainID string   `json:"contract_on_chain_id" binding:"required"`
	AmountLocked      *float64 `json:"amount_locked" binding:"required"`
	ProjectID         string   `json:"project_id,omitempty"`
	ServiceRequestID  string   `json:"service_request_id,omitempty"`
}

// UpdateContractStatusInput is the body of the escrow status route. UserID is
// only cross-checked against the authenticated principal.
type UpdateContractStatusInput struct {
	EscrowStatus string `json:"escrow_status" binding:"required"`
	UserID       string `json:"user_id,omitempty"`
}
