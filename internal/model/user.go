package model

import "time"

// AppUser is a user profile record. ID equals the caller's identity-provider
// subject id and never changes after creation.
type AppUser struct {
	ID              string           `json:"id"`
	Username        *string          `json:"username,omitempty"`
	Name            *string          `json:"name,omitempty"`
	Profile         *Profile         `json:"profile,omitempty"`
	Overview        *Overview        `json:"overview,omitempty"`
	Goals           []Goal           `json:"goals"`
	Accomplishments []Accomplishment `json:"accomplishments"`
	CreatedAt       *time.Time       `json:"createdAt,omitempty"`
	ModifiedAt      *time.Time       `json:"modifiedAt,omitempty"`
}

// NewAppUser returns a bare record for an unseen caller identity.
func NewAppUser(id string) *AppUser {
	u := &AppUser{
		ID:              id,
		Goals:           []Goal{},
		Accomplishments: []Accomplishment{},
	}
	u.MarkCreated()
	return u
}

// DocumentID implements store.Document.
func (u AppUser) DocumentID() string { return u.ID }

// MarkCreated stamps the creation time (UTC).
func (u *AppUser) MarkCreated() {
	now := time.Now().UTC()
	u.CreatedAt = &now
}

// MarkModified stamps the modification time (UTC).
func (u *AppUser) MarkModified() {
	now := time.Now().UTC()
	u.ModifiedAt = &now
}

// Goal is a user-owned goal statement.
type Goal struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	Description string `json:"description"`
}

// Accomplishment records completion of a goal.
type Accomplishment struct {
	ID          string     `json:"accomplishmentId"`
	GoalID      string     `json:"goalId"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Description string     `json:"description"`
	Notes       string     `json:"notes"`
}
