package web

import (
	"net/http"
	"time"
)

type actionRequest struct {
	Text      string     `json:"text"`
	ProjectID *int64     `json:"project_id"`
	Deadline  *time.Time `json:"deadline"`
}

func (s *Server) handleGetActions(w http.ResponseWriter, r *http.Request) {
	actions, err := s.db.GetActions(currentUser(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, actions)
}

func (s *Server) handleCreateAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	action, err := s.db.CreateAction(currentUser(r).ID, req.Text, req.ProjectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, action)
}

func (s *Server) handleToggleAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	action, err := s.db.ToggleActionComplete(currentUser(r).ID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, action)
}

func (s *Server) handleUpdateAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	user := currentUser(r)

	var req actionRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	// An omitted project keeps the action where it is
	if req.ProjectID == nil {
		current, err := s.db.GetAction(user.ID, id)
		if err != nil {
			writeError(w, err)
			return
		}
		req.ProjectID = &current.ProjectID
	}

	action, err := s.db.UpdateAction(user.ID, id, req.Text, *req.ProjectID, req.Deadline)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, action)
}

func (s *Server) handleDeleteAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.db.DeleteAction(currentUser(r).ID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
