package web

import (
	"context"
	"net/http"

	"github.com/XeryusTC/projman/internal/model"
)

const sessionCookie = "session"

type contextKey string

const userKey contextKey = "user"

// currentUser returns the authenticated user stored in the request
// context by authMiddleware
func currentUser(r *http.Request) *model.User {
	if u, ok := r.Context().Value(userKey).(*model.User); ok {
		return u
	}
	return nil
}

// authMiddleware resolves the session cookie to a user and stores it in
// the request context. Requests without a valid session get 401.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			writeError(w, model.ErrInvalidCredentials)
			return
		}

		user, err := s.db.SessionUser(cookie.Value)
		if err != nil {
			clearSessionCookie(w)
			writeError(w, model.ErrInvalidCredentials)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
	})
}
