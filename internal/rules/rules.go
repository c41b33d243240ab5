// Package rules implements the ownership and uniqueness invariants for
// inlist items, actions and projects. The validators are pure predicate
// checks against current stored state; they perform no writes themselves
// and are meant to run inside the same transaction as the subsequent
// write. The unique indexes in the store remain the final arbiter for
// races that slip past these checks.
package rules

import (
	"strings"

	"github.com/XeryusTC/projman/internal/model"
	"golang.org/x/text/language"
)

// Store is the read-only state the validators check against. It is
// implemented by the sqlite store's transaction wrapper; tests use an
// in-memory fake.
type Store interface {
	// InlistItemExists reports whether the user already has an inlist
	// item with this exact text.
	InlistItemExists(userID int64, text string) (bool, error)

	// ActionExists reports whether the user already has an action with
	// this exact text in the given project. An action with id exceptID
	// is ignored so edits do not collide with themselves; pass 0 when
	// creating.
	ActionExists(userID, projectID int64, text string, exceptID int64) (bool, error)

	// ProjectNameExists reports whether the user already has a project
	// with this exact name, ignoring the project with id exceptID.
	ProjectNameExists(userID int64, name string, exceptID int64) (bool, error)
}

// ValidateInlistItem rejects blank or duplicate inlist captures.
func ValidateInlistItem(s Store, userID int64, text string) error {
	if strings.TrimSpace(text) == "" {
		return model.ErrEmptyText
	}
	exists, err := s.InlistItemExists(userID, text)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrDuplicateInlistItem
	}
	return nil
}

// ValidateAction rejects blank text, a project belonging to a different
// user, and duplicate (text, user, project) combinations. The project is
// the one the action will live in after the write; exceptID is the id of
// the action being edited, or 0 when creating.
func ValidateAction(s Store, userID int64, project *model.Project, text string, exceptID int64) error {
	if strings.TrimSpace(text) == "" {
		return model.ErrEmptyText
	}
	if project.UserID != userID {
		return model.ErrInvalidOwner
	}
	exists, err := s.ActionExists(userID, project.ID, text, exceptID)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrDuplicateAction
	}
	return nil
}

// ValidateProject rejects blank or duplicate project names. The reserved
// default project name is covered by the duplicate check since the
// default project always exists. exceptID is the id of the project being
// edited, or 0 when creating.
func ValidateProject(s Store, userID int64, name string, exceptID int64) error {
	if strings.TrimSpace(name) == "" {
		return model.ErrEmptyName
	}
	exists, err := s.ProjectNameExists(userID, name, exceptID)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrDuplicateProject
	}
	return nil
}

// ValidateLanguage checks that a settings language choice is a
// well-formed BCP 47 tag.
func ValidateLanguage(tag string) error {
	if _, err := language.Parse(tag); err != nil {
		return model.ErrInvalidLanguage
	}
	return nil
}

// GuardOwner confirms the requester owns an entity. Mismatches surface as
// "not found" so that probing for other users' items does not leak their
// existence.
func GuardOwner(requesterID, ownerID int64) error {
	if requesterID != ownerID {
		return model.ErrNotFound
	}
	return nil
}

// GuardProjectWrite confirms an edit or delete of a project is allowed:
// the requester must own it, and the default project is protected from
// both regardless of ownership.
func GuardProjectWrite(requesterID int64, p *model.Project) error {
	if err := GuardOwner(requesterID, p.UserID); err != nil {
		return err
	}
	if p.IsDefault() {
		return model.ErrForbidden
	}
	return nil
}
