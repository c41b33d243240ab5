package model

import "time"

// InlistItem is a quick-capture entry awaiting triage. It is destroyed
// either by deletion or by conversion into an Action or a Project.
type InlistItem struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
