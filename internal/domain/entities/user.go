package entities

import (
	"time"

	"github.com/google/uuid"
)

// User is owned by the account system; this service only reads it.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	IsFreelancer bool      `json:"is_freelancer"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSummary is the public projection embedded in project and contract payloads
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// Summary returns the embeddable projection of the user
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Username: u.Username, Email: u.Email}
}
