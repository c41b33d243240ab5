package model

import "errors"

// Domain error taxonomy. All of these are recoverable at the request
// boundary; the web layer maps them onto HTTP status codes.
var (
	// Validation failures
	ErrEmptyText       = errors.New("item text must not be empty")
	ErrEmptyName       = errors.New("project name must not be empty")
	ErrInvalidLanguage = errors.New("unknown language tag")

	// Uniqueness violations, scoped per owner
	ErrDuplicateInlistItem = errors.New("item is already on the inlist")
	ErrDuplicateAction     = errors.New("action already planned")
	ErrDuplicateProject    = errors.New("a project with this name already exists")
	ErrDuplicateUser       = errors.New("a user with this email already exists")

	// Ownership and protection
	ErrInvalidOwner = errors.New("actions and projects must belong to the same user")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("operation not allowed")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid email or password")
)
