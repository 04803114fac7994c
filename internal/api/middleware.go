package api

import (
	"context"
	"net/http"

	"github.com/dtran/taskwise/internal/model"
)

type contextKey string

const userContextKey contextKey = "user"

// requireAuth resolves the auth cookie to a user profile and stores it in
// the request context. Missing or invalid tokens end the request with 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			errorJSON(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		profile, err := s.auth.VerifyToken(r.Context(), cookie.Value)
		if err != nil {
			errorJSON(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, profile)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFrom returns the authenticated profile placed by requireAuth.
func userFrom(r *http.Request) model.Profile {
	profile, _ := r.Context().Value(userContextKey).(model.Profile)
	return profile
}
