// Package web exposes the application over HTTP as a JSON API. Handlers
// stay thin: they decode the request, call the store, and translate
// domain errors into status codes.
package web

import (
	"net/http"

	"github.com/XeryusTC/projman/internal/db"
)

// Server holds the HTTP handler dependencies
type Server struct {
	db *db.DB
}

// NewServer creates a server backed by the given store
func NewServer(database *db.DB) *Server {
	return &Server{db: database}
}

// Handler builds the route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Auth routes (public)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)

	// Authenticated routes
	app := http.NewServeMux()
	app.HandleFunc("POST /logout", s.handleLogout)

	// Inlist
	app.HandleFunc("GET /inlist", s.handleGetInlist)
	app.HandleFunc("POST /inlist", s.handleCreateInlistItem)
	app.HandleFunc("DELETE /inlist/{id}", s.handleDeleteInlistItem)
	app.HandleFunc("POST /inlist/{id}/convert/action", s.handleConvertToAction)
	app.HandleFunc("POST /inlist/{id}/convert/project", s.handleConvertToProject)

	// Actions
	app.HandleFunc("GET /actions", s.handleGetActions)
	app.HandleFunc("POST /actions", s.handleCreateAction)
	app.HandleFunc("POST /actions/{id}/complete", s.handleToggleAction)
	app.HandleFunc("PUT /actions/{id}", s.handleUpdateAction)
	app.HandleFunc("DELETE /actions/{id}", s.handleDeleteAction)

	// Projects
	app.HandleFunc("GET /projects", s.handleGetProjects)
	app.HandleFunc("POST /projects", s.handleCreateProject)
	app.HandleFunc("GET /projects/{id}", s.handleGetProject)
	app.HandleFunc("PUT /projects/{id}", s.handleUpdateProject)
	app.HandleFunc("DELETE /projects/{id}", s.handleDeleteProject)

	// Settings
	app.HandleFunc("GET /settings", s.handleGetSettings)
	app.HandleFunc("PUT /settings", s.handleUpdateSettings)

	mux.Handle("/", s.authMiddleware(app))

	return mux
}
