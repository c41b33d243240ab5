package db

import "database/sql"

// txStore adapts an open transaction to the rules.Store interface so the
// uniqueness validators run in the same transaction as the write they
// guard. There is no check-then-insert window across transactions.
type txStore struct {
	tx *sql.Tx
}

func (s txStore) InlistItemExists(userID int64, text string) (bool, error) {
	var exists bool
	err := s.tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM inlist_items WHERE user_id = ? AND text = ?)
	`, userID, text).Scan(&exists)
	return exists, err
}

func (s txStore) ActionExists(userID, projectID int64, text string, exceptID int64) (bool, error) {
	var exists bool
	err := s.tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM actions
			WHERE user_id = ? AND project_id = ? AND text = ? AND id != ?
		)
	`, userID, projectID, text, exceptID).Scan(&exists)
	return exists, err
}

func (s txStore) ProjectNameExists(userID int64, name string, exceptID int64) (bool, error) {
	var exists bool
	err := s.tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM projects
			WHERE user_id = ? AND name = ? AND id != ?
		)
	`, userID, name, exceptID).Scan(&exists)
	return exists, err
}
