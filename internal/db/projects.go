package db

import (
	"database/sql"
	"time"

	"github.com/XeryusTC/projman/internal/model"
	"github.com/XeryusTC/projman/internal/rules"
)

// GetProjects returns all of a user's projects with action counts, the
// default project first
func (db *DB) GetProjects(userID int64) ([]model.Project, error) {
	rows, err := db.Query(`
		SELECT p.id, p.user_id, p.name, p.description, p.created_at, p.updated_at,
		       (SELECT COUNT(*) FROM actions WHERE project_id = p.id) as action_count,
		       (SELECT COUNT(*) FROM actions WHERE project_id = p.id AND complete = 1) as completed_count
		FROM projects p
		WHERE p.user_id = ?
		ORDER BY p.name != ?, p.name
	`, userID, model.DefaultProjectName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Description,
			&p.CreatedAt, &p.UpdatedAt, &p.ActionCount, &p.CompletedCount,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// GetProject returns a single project. Projects belonging to a different
// user come back as ErrNotFound.
func (db *DB) GetProject(userID, id int64) (*model.Project, error) {
	p, err := getProject(db.DB, id)
	if err != nil {
		return nil, err
	}
	if err := rules.GuardOwner(userID, p.UserID); err != nil {
		return nil, err
	}
	return p, nil
}

// DefaultProject returns the user's protected "Actions" project
func (db *DB) DefaultProject(userID int64) (*model.Project, error) {
	var p model.Project
	err := db.QueryRow(`
		SELECT id, user_id, name, description, created_at, updated_at
		FROM projects WHERE user_id = ? AND name = ?
	`, userID, model.DefaultProjectName).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// CreateProject creates a new project for a user
func (db *DB) CreateProject(userID int64, name, description string) (*model.Project, error) {
	now := time.Now()
	var project *model.Project
	err := db.Transaction(func(tx *sql.Tx) error {
		p, err := insertProject(tx, userID, name, description, now)
		if err != nil {
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

// UpdateProject edits a project's name and description. The default
// project is protected and cannot be edited, not even by its owner.
func (db *DB) UpdateProject(userID, id int64, name, description string) (*model.Project, error) {
	now := time.Now()
	var project *model.Project
	err := db.Transaction(func(tx *sql.Tx) error {
		p, err := getProject(tx, id)
		if err != nil {
			return err
		}
		if err := rules.GuardProjectWrite(userID, p); err != nil {
			return err
		}
		if err := rules.ValidateProject(txStore{tx}, userID, name, p.ID); err != nil {
			return err
		}

		if _, err := tx.Exec(`
			UPDATE projects SET name = ?, description = ?, updated_at = ? WHERE id = ?
		`, name, description, now, id); err != nil {
			if uniqueViolation(err) {
				return model.ErrDuplicateProject
			}
			return err
		}

		p.Name = name
		p.Description = description
		p.UpdatedAt = now
		project = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject removes a project and all of its actions. The default
// project is protected and cannot be deleted.
func (db *DB) DeleteProject(userID, id int64) error {
	return db.Transaction(func(tx *sql.Tx) error {
		p, err := getProject(tx, id)
		if err != nil {
			return err
		}
		if err := rules.GuardProjectWrite(userID, p); err != nil {
			return err
		}

		// Actions cascade via the foreign key
		_, err = tx.Exec(`DELETE FROM projects WHERE id = ?`, id)
		return err
	})
}

func getProject(q queryer, id int64) (*model.Project, error) {
	var p model.Project
	err := q.QueryRow(`
		SELECT id, user_id, name, description, created_at, updated_at
		FROM projects WHERE id = ?
	`, id).Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// defaultProject fetches the user's "Actions" project inside a
// transaction. It exists for every user, provisioned with the account.
func defaultProject(tx *sql.Tx, userID int64) (*model.Project, error) {
	var p model.Project
	err := tx.QueryRow(`
		SELECT id, user_id, name, description, created_at, updated_at
		FROM projects WHERE user_id = ? AND name = ?
	`, userID, model.DefaultProjectName).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// insertProject validates and inserts a new project row
func insertProject(tx *sql.Tx, userID int64, name, description string, now time.Time) (*model.Project, error) {
	if err := rules.ValidateProject(txStore{tx}, userID, name, 0); err != nil {
		return nil, err
	}

	res, err := tx.Exec(`
		INSERT INTO projects (user_id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, name, description, now, now)
	if uniqueViolation(err) {
		return nil, model.ErrDuplicateProject
	}
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Project{
		ID:          id,
		UserID:      userID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
