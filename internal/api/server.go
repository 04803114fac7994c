// Package api is the thin HTTP boundary: it translates requests into calls
// on the auth service and the store, and translates results and the error
// taxonomy back into responses. No business rules live here.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dtran/taskwise/internal/auth"
	"github.com/dtran/taskwise/internal/store"
)

// Server wires the route handlers to the services.
type Server struct {
	store        store.Store
	auth         *auth.Service
	cookieSecure bool
	corsOrigins  []string
}

// NewServer constructs the HTTP boundary over the given store and identity
// service.
func NewServer(st store.Store, authSvc *auth.Service, corsOrigins []string, cookieSecure bool) *Server {
	return &Server{
		store:        st,
		auth:         authSvc,
		cookieSecure: cookieSecure,
		corsOrigins:  corsOrigins,
	}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", s.handleSignup)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/auth/me", s.handleMe)
			r.Get("/tasks", s.handleListTasks)
			r.Post("/tasks", s.handleCreateTask)
			r.Put("/tasks/{id}", s.handleUpdateTask)
			r.Delete("/tasks/{id}", s.handleDeleteTask)
			r.Post("/tasks/reorder", s.handleReorderTasks)
			r.Get("/user/stats", s.handleUserStats)
		})
	})

	return r
}
