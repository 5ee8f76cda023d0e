package models

import (
	"time"

	"github.com/google/uuid"
)

type Contract struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ContractType      string     `gorm:"type:varchar(20);not null"`
	FreelancerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Freelancer        *User      `gorm:"foreignKey:FreelancerID"`
	ClientID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Client            *User      `gorm:"foreignKey:ClientID"`
	ProjectID         *uuid.UUID `gorm:"type:uuid;index"`
	ServiceRequestID  *uuid.UUID `gorm:"type:uuid;index"`
	ContractOnChainID string     `gorm:"column:contract_on_chain_id;type:varchar(255);not null"`
	AmountLocked      float64    `gorm:"type:decimal(20,8);not null"`
	EscrowStatus      string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt         time.Time  `gorm:"index"`
	UpdatedAt         time.Time
}
