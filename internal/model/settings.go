package model

// Settings holds per-user preferences. A row is provisioned together with
// the user and exists for every user.
type Settings struct {
	UserID              int64  `json:"-"`
	Language            string `json:"language"`
	InlistDeleteConfirm bool   `json:"inlist_delete_confirm"`
	ActionDeleteConfirm bool   `json:"action_delete_confirm"`
}
