package web

import "net/http"

type settingsRequest struct {
	Language            string `json:"language"`
	InlistDeleteConfirm bool   `json:"inlist_delete_confirm"`
	ActionDeleteConfirm bool   `json:"action_delete_confirm"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.db.GetSettings(currentUser(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	settings, err := s.db.UpdateSettings(currentUser(r).ID, req.Language,
		req.InlistDeleteConfirm, req.ActionDeleteConfirm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
