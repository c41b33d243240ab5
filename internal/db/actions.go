package db

import (
	"database/sql"
	"time"

	"github.com/XeryusTC/projman/internal/model"
	"github.com/XeryusTC/projman/internal/rules"
)

// GetActions returns all of a user's actions across all projects,
// incomplete ones first
func (db *DB) GetActions(userID int64) ([]model.Action, error) {
	rows, err := db.Query(`
		SELECT id, user_id, project_id, text, complete, deadline, created_at, updated_at
		FROM actions
		WHERE user_id = ?
		ORDER BY complete, created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActions(rows)
}

// GetProjectActions returns the actions of one of the user's projects
func (db *DB) GetProjectActions(userID, projectID int64) ([]model.Action, error) {
	// Resolves ownership; other users' projects surface as not found
	if _, err := db.GetProject(userID, projectID); err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, user_id, project_id, text, complete, deadline, created_at, updated_at
		FROM actions
		WHERE project_id = ?
		ORDER BY complete, created_at, id
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActions(rows)
}

// GetAction returns a single action. Actions belonging to a different
// user come back as ErrNotFound.
func (db *DB) GetAction(userID, id int64) (*model.Action, error) {
	a, err := getAction(db.DB, id)
	if err != nil {
		return nil, err
	}
	if err := rules.GuardOwner(userID, a.UserID); err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAction creates an action for a user. A nil projectID puts it in
// the user's default "Actions" project.
func (db *DB) CreateAction(userID int64, text string, projectID *int64) (*model.Action, error) {
	now := time.Now()
	var action *model.Action
	err := db.Transaction(func(tx *sql.Tx) error {
		project, err := resolveProject(tx, userID, projectID)
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

// ToggleActionComplete flips an action's complete flag. Toggling twice
// returns the action to its original state.
func (db *DB) ToggleActionComplete(userID, id int64) (*model.Action, error) {
	now := time.Now()
	var action *model.Action
	err := db.Transaction(func(tx *sql.Tx) error {
		a, err := getAction(tx, id)
		if err != nil {
			return err
		}
		if err := rules.GuardOwner(userID, a.UserID); err != nil {
			return err
		}

		if _, err := tx.Exec(`
			UPDATE actions SET complete = NOT complete, updated_at = ? WHERE id = ?
		`, now, id); err != nil {
			return err
		}

		a.Complete = !a.Complete
		a.UpdatedAt = now
		action = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	return action, nil
}

// UpdateAction edits an action's text and deadline and moves it to the
// given project. Moving or renaming into a duplicate fails without
// changing anything.
func (db *DB) UpdateAction(userID, id int64, text string, projectID int64, deadline *time.Time) (*model.Action, error) {
	now := time.Now()
	var action *model.Action
	err := db.Transaction(func(tx *sql.Tx) error {
		a, err := getAction(tx, id)
		if err != nil {
			return err
		}
		if err := rules.GuardOwner(userID, a.UserID); err != nil {
			return err
		}

		project, err := resolveProject(tx, userID, &projectID)
		if err != nil {
			return err
		}

		// Exclude the action itself so editing only the deadline or
		// moving it back does not count as a duplicate
		if err := rules.ValidateAction(txStore{tx}, userID, project, text, a.ID); err != nil {
			return err
		}

		if _, err := tx.Exec(`
			UPDATE actions SET text = ?, project_id = ?, deadline = ?, updated_at = ?
			WHERE id = ?
		`, text, project.ID, deadline, now, id); err != nil {
			if uniqueViolation(err) {
				return model.ErrDuplicateAction
			}
			return err
		}

		a.Text = text
		a.ProjectID = project.ID
		a.Deadline = deadline
		a.UpdatedAt = now
		action = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	return action, nil
}

// DeleteAction removes an action owned by the user
func (db *DB) DeleteAction(userID, id int64) error {
	return db.Transaction(func(tx *sql.Tx) error {
		a, err := getAction(tx, id)
		if err != nil {
			return err
		}
		if err := rules.GuardOwner(userID, a.UserID); err != nil {
			return err
		}

		_, err = tx.Exec(`DELETE FROM actions WHERE id = ?`, id)
		return err
	})
}

// queryer is the subset of *sql.DB and *sql.Tx the scan helpers need
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
}

func getAction(q queryer, id int64) (*model.Action, error) {
	var a model.Action
	err := q.QueryRow(`
		SELECT id, user_id, project_id, text, complete, deadline, created_at, updated_at
		FROM actions WHERE id = ?
	`, id).Scan(&a.ID, &a.UserID, &a.ProjectID, &a.Text, &a.Complete,
		&a.Deadline, &a.CreatedAt, &a.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// resolveProject looks up the action's target project, falling back to
// the user's default project when none is given. The validator decides
// whether a cross-owner project is acceptable, so no owner check here.
func resolveProject(tx *sql.Tx, userID int64, projectID *int64) (*model.Project, error) {
	if projectID == nil {
		return defaultProject(tx, userID)
	}
	return getProject(tx, *projectID)
}

func scanActions(rows *sql.Rows) ([]model.Action, error) {
	var actions []model.Action
	for rows.Next() {
		var a model.Action
		if err := rows.Scan(&a.ID, &a.UserID, &a.ProjectID, &a.Text,
			&a.Complete, &a.Deadline, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
