package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/XeryusTC/projman/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError maps a domain error onto an HTTP status code and a JSON
// body. Unknown errors are logged and surface as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrEmptyText),
		errors.Is(err, model.ErrEmptyName),
		errors.Is(err, model.ErrInvalidLanguage),
		errors.Is(err, model.ErrInvalidOwner):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDuplicateInlistItem),
		errors.Is(err, model.ErrDuplicateAction),
		errors.Is(err, model.ErrDuplicateProject),
		errors.Is(err, model.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// decode reads a JSON request body into v
func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
