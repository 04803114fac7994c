package api

import (
	"net/http"
	"time"

	"github.com/dtran/taskwise/internal/auth"
)

// cookieName is the cookie carrying the signed auth token.
const cookieName = "auth-token"

// setAuthCookie stores the token in an http-only, same-site-lax cookie
// whose lifetime matches the token's.
func (s *Server) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.cookieSecure,
		Expires:  time.Now().Add(auth.TokenTTL),
	})
}

// clearAuthCookie expires the auth cookie.
func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.cookieSecure,
		MaxAge:   -1,
	})
}
