package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Client      *User     `gorm:"foreignKey:ClientID"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Budget      float64   `gorm:"type:decimal(14,2);not null;default:0"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}
