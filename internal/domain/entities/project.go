package entities

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle stage of a project
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// Project represents a work request posted by a client
type Project struct {
	ID          uuid.UUID     `json:"id"`
	ClientID    uuid.UUID     `json:"client_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Budget      float64       `json:"budget"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Client      *UserSummary  `json:"client,omitempty"`
}

// CreateProjectInput represents input for posting a project
type CreateProjectInput struct {
	ClientID    string   `json:"client_id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Budget      *float64 `json:"budget" binding:"required"`
}

// ProjectPatch holds the editable columns of a project. A nil field is left
// untouched; there is no way to null a column through a patch.
type ProjectPatch struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Budget      *float64       `json:"budget,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all
func (p ProjectPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil && p.Budget == nil && p.Status == nil
}

// ProjectFilter narrows a project listing
type ProjectFilter struct {
	Category  string
	BudgetMin *float64
	BudgetMax *float64
	Status    *ProjectStatus
	Page      int
	Limit     int
}
