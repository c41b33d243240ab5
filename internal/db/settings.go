package db

import (
	"database/sql"

	"github.com/XeryusTC/projman/internal/model"
	"github.com/XeryusTC/projman/internal/rules"
)

// GetSettings returns a user's settings. A row is provisioned with every
// account so a missing one means the user does not exist.
func (db *DB) GetSettings(userID int64) (*model.Settings, error) {
	var s model.Settings
	err := db.QueryRow(`
		SELECT user_id, language, inlist_delete_confirm, action_delete_confirm
		FROM settings WHERE user_id = ?
	`, userID).Scan(&s.UserID, &s.Language, &s.InlistDeleteConfirm, &s.ActionDeleteConfirm)

	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// UpdateSettings stores a user's language choice and delete-confirmation
// preferences
func (db *DB) UpdateSettings(userID int64, language string, inlistConfirm, actionConfirm bool) (*model.Settings, error) {
	if err := rules.ValidateLanguage(language); err != nil {
		return nil, err
	}

	res, err := db.Exec(`
		UPDATE settings
		SET language = ?, inlist_delete_confirm = ?, action_delete_confirm = ?
		WHERE user_id = ?
	`, language, inlistConfirm, actionConfirm, userID)
	if err != nil {
		return nil, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, model.ErrNotFound
	}

	return &model.Settings{
		UserID:              userID,
		Language:            language,
		InlistDeleteConfirm: inlistConfirm,
		ActionDeleteConfirm: actionConfirm,
	}, nil
}
