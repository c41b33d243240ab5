package db

import (
	"database/sql"
	"time"

	"github.com/XeryusTC/projman/internal/model"
	"github.com/XeryusTC/projman/internal/rules"
)

// GetInlist returns all of a user's inlist items in capture order
func (db *DB) GetInlist(userID int64) ([]model.InlistItem, error) {
	rows, err := db.Query(`
		SELECT id, user_id, text, created_at
		FROM inlist_items
		WHERE user_id = ?
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.InlistItem
	for rows.Next() {
		var it model.InlistItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.Text, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// GetInlistItem returns a single inlist item. Items belonging to a
// different user come back as ErrNotFound so their existence is not
// leaked.
func (db *DB) GetInlistItem(userID, id int64) (*model.InlistItem, error) {
	var it model.InlistItem
	err := db.QueryRow(`
		SELECT id, user_id, text, created_at FROM inlist_items WHERE id = ?
	`, id).Scan(&it.ID, &it.UserID, &it.Text, &it.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := rules.GuardOwner(userID, it.UserID); err != nil {
		return nil, err
	}

	return &it, nil
}

// CreateInlistItem captures a new inlist item for a user
func (db *DB) CreateInlistItem(userID int64, text string) (*model.InlistItem, error) {
	now := time.Now()
	var item *model.InlistItem
	err := db.Transaction(func(tx *sql.Tx) error {
		if err := rules.ValidateInlistItem(txStore{tx}, userID, text); err != nil {
			return err
		}

		res, err := tx.Exec(`
			INSERT INTO inlist_items (user_id, text, created_at)
			VALUES (?, ?, ?)
		`, userID, text, now)
		if uniqueViolation(err) {
			return model.ErrDuplicateInlistItem
		}
		if err != nil {
			return err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		item = &model.InlistItem{ID: id, UserID: userID, Text: text, CreatedAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteInlistItem removes an inlist item owned by the user
func (db *DB) DeleteInlistItem(userID, id int64) error {
	return db.Transaction(func(tx *sql.Tx) error {
		return deleteInlistItem(tx, userID, id)
	})
}

// ConvertToAction turns an inlist item into an action on the user's
// default project. The action insert and the inlist delete happen in one
// transaction: if the new action fails validation the inlist item stays
// untouched. The text may differ from the captured text, it is validated
// like any new action.
func (db *DB) ConvertToAction(userID, itemID int64, text string) (*model.Action, error) {
	now := time.Now()
	var action *model.Action
	err := db.Transaction(func(tx *sql.Tx) error {
		if err := guardInlistItem(tx, userID, itemID); err != nil {
			return err
		}

		project, err := defaultProject(tx, userID)
		if err != nil {
			return err
		}

		if err := rules.ValidateAction(txStore{tx}, userID, project, text, 0); err != nil {
			return err
		}

		res, err := tx.Exec(`
			INSERT INTO actions (user_id, project_id, text, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, userID, project.ID, text, now, now)
		if uniqueViolation(err) {
			return model.ErrDuplicateAction
		}
		if err != nil {
			return err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		if err := deleteInlistItem(tx, userID, itemID); err != nil {
			return err
		}

		action = &model.Action{
			ID:        id,
			UserID:    userID,
			ProjectID: project.ID,
			Text:      text,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return action, nil
}

// ConvertToProject turns an inlist item into a new project. Creating the
// project and deleting the inlist item are atomic.
func (db *DB) ConvertToProject(userID, itemID int64, name, description string) (*model.Project, error) {
	now := time.Now()
	var project *model.Project
	err := db.Transaction(func(tx *sql.Tx) error {
		if err := guardInlistItem(tx, userID, itemID); err != nil {
			return err
		}

		p, err := insertProject(tx, userID, name, description, now)
		if err != nil {
			return err
		}

		if err := deleteInlistItem(tx, userID, itemID); err != nil {
			return err
		}

		project = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// guardInlistItem checks an inlist item exists and belongs to the user
func guardInlistItem(tx *sql.Tx, userID, id int64) error {
	var ownerID int64
	err := tx.QueryRow(`SELECT user_id FROM inlist_items WHERE id = ?`, id).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return model.ErrNotFound
	}
	if err != nil {
		return err
	}
	return rules.GuardOwner(userID, ownerID)
}

func deleteInlistItem(tx *sql.Tx, userID, id int64) error {
	if err := guardInlistItem(tx, userID, id); err != nil {
		return err
	}
	_, err := tx.Exec(`DELETE FROM inlist_items WHERE id = ?`, id)
	return err
}
