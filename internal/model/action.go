package model

import "time"

// Action is a structured task. Every action belongs to a project; actions
// created without one land in the owner's default "Actions" project.
type Action struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"-"`
	ProjectID int64      `json:"project_id"`
	Text      string     `json:"text"`
	Complete  bool       `json:"complete"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsOverdue returns true if the action has a deadline in the past and is
// not complete yet.
func (a *Action) IsOverdue() bool {
	if a.Deadline == nil || a.Complete {
		return false
	}
	return time.Now().After(*a.Deadline)
}
