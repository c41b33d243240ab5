package web

import "net/http"

type inlistItemRequest struct {
	Text string `json:"text"`
}

type convertToProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleGetInlist(w http.ResponseWriter, r *http.Request) {
	items, err := s.db.GetInlist(currentUser(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateInlistItem(w http.ResponseWriter, r *http.Request) {
	var req inlistItemRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	item, err := s.db.CreateInlistItem(currentUser(r).ID, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleDeleteInlistItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.db.DeleteInlistItem(currentUser(r).ID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleConvertToAction turns an inlist item into an action on the
// user's default project. The request may adjust the text; an empty body
// keeps the captured text.
func (s *Server) handleConvertToAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	user := currentUser(r)

	var req inlistItemRequest
	if r.ContentLength > 0 {
		if err := decode(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
	}
	if req.Text == "" {
		item, err := s.db.GetInlistItem(user.ID, id)
		if err != nil {
			writeError(w, err)
			return
		}
		req.Text = item.Text
	}

	action, err := s.db.ConvertToAction(user.ID, id, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, action)
}

// handleConvertToProject turns an inlist item into a new project named
// after it, unless the request overrides the name.
func (s *Server) handleConvertToProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	user := currentUser(r)

	var req convertToProjectRequest
	if r.ContentLength > 0 {
		if err := decode(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
	}
	if req.Name == "" {
		item, err := s.db.GetInlistItem(user.ID, id)
		if err != nil {
			writeError(w, err)
			return
		}
		req.Name = item.Text
	}

	project, err := s.db.ConvertToProject(user.ID, id, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}
