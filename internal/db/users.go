package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/XeryusTC/projman/internal/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL is how long a login session stays valid.
const sessionTTL = 30 * 24 * time.Hour

// CreateUser creates a user together with their settings row and their
// default "Actions" project. All three rows are written in one
// transaction so the default project is guaranteed to exist before the
// user can create any action.
func (db *DB) CreateUser(email, name, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	var user *model.User
	err = db.Transaction(func(tx *sql.Tx) error {
		res, err := tx.Exec(`
			INSERT INTO users (email, name, password_hash, created_at)
			VALUES (?, ?, ?, ?)
		`, email, name, string(hash), now)
		if uniqueViolation(err) {
			return model.ErrDuplicateUser
		}
		if err != nil {
			return err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`INSERT INTO settings (user_id) VALUES (?)`, id); err != nil {
			return err
		}

		if _, err := tx.Exec(`
			INSERT INTO projects (user_id, name, description, created_at, updated_at)
			VALUES (?, ?, '', ?, ?)
		`, id, model.DefaultProjectName, now, now); err != nil {
			return err
		}

		user = &model.User{
			ID:        id,
			Email:     email,
			Name:      name,
			CreatedAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks a user's credentials and returns the user on
// success. Unknown emails and wrong passwords are indistinguishable.
func (db *DB) Authenticate(email, password string) (*model.User, error) {
	var u model.User
	err := db.QueryRow(`
		SELECT id, email, name, password_hash, created_at
		FROM users WHERE email = ?
	`, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	return &u, nil
}

// GetUser returns a single user by ID
func (db *DB) GetUser(id int64) (*model.User, error) {
	var u model.User
	err := db.QueryRow(`
		SELECT id, email, name, created_at FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// CreateSession starts a new login session for a user
func (db *DB) CreateSession(userID int64) (*model.Session, error) {
	now := time.Now()
	s := &model.Session{
		UserID:    userID,
		Token:     uuid.New().String(),
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	res, err := db.Exec(`
		INSERT INTO sessions (user_id, token, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, s.UserID, s.Token, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return nil, err
	}

	s.ID, err = res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// SessionUser resolves a session token to its user. Expired or unknown
// tokens yield ErrNotFound.
func (db *DB) SessionUser(token string) (*model.User, error) {
	var u model.User
	var expiresAt time.Time
	err := db.QueryRow(`
		SELECT u.id, u.email, u.name, u.created_at, s.expires_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = ?
	`, token).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &expiresAt)

	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(expiresAt) {
		return nil, model.ErrNotFound
	}

	return &u, nil
}

// DeleteSession ends a login session
func (db *DB) DeleteSession(token string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	return err
}
