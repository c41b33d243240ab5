package model

import "time"

// DefaultProjectName is the reserved name of the project every user
// receives at creation time. It is the implicit home for actions not
// assigned to a named project and cannot be edited or deleted.
const DefaultProjectName = "Actions"

// Project represents a named grouping of actions owned by a user.
type Project struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Computed fields (not stored)
	ActionCount    int `json:"action_count,omitempty"`
	CompletedCount int `json:"completed_count,omitempty"`
}

// IsDefault returns true if this is the user's protected default project.
func (p *Project) IsDefault() bool {
	return p.Name == DefaultProjectName
}
