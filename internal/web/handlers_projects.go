package web

import (
	"net/http"

	"github.com/XeryusTC/projman/internal/model"
)

type projectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type projectResponse struct {
	*model.Project
	Protected bool           `json:"protected"`
	Actions   []model.Action `json:"actions,omitempty"`
}

func (s *Server) handleGetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.db.GetProjects(currentUser(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]projectResponse, 0, len(projects))
	for i := range projects {
		resp = append(resp, projectResponse{
			Project:   &projects[i],
			Protected: projects[i].IsDefault(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	project, err := s.db.CreateProject(currentUser(r).ID, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, projectResponse{Project: project})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	user := currentUser(r)

	project, err := s.db.GetProject(user.ID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	actions, err := s.db.GetProjectActions(user.ID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projectResponse{
		Project:   project,
		Protected: project.IsDefault(),
		Actions:   actions,
	})
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req projectRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	project, err := s.db.UpdateProject(currentUser(r).ID, id, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectResponse{Project: project})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.db.DeleteProject(currentUser(r).ID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
