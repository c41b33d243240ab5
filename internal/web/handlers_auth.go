package web

import (
	"net/http"
	"strconv"

	"github.com/XeryusTC/projman/internal/model"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email and password are required"})
		return
	}

	user, err := s.db.CreateUser(req.Email, req.Name, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	// Log the new user in right away
	session, err := s.db.CreateSession(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	setSessionCookie(w, session.Token)

	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, err := s.db.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	session, err := s.db.CreateSession(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	setSessionCookie(w, session.Token)

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := s.db.DeleteSession(cookie.Value); err != nil {
			writeError(w, err)
			return
		}
	}
	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path segment. Malformed ids map to not found,
// same as ids that never existed.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, model.ErrNotFound
	}
	return id, nil
}
