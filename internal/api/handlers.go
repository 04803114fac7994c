package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtran/taskwise/internal/auth"
	"github.com/dtran/taskwise/internal/model"
	"github.com/dtran/taskwise/internal/stats"
	"github.com/dtran/taskwise/internal/store"
)

type credentialsRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DisplayName *string `json:"displayName"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, token, err := s.auth.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	switch {
	case errors.Is(err, store.ErrValidation):
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, store.ErrDuplicateEmail):
		errorJSON(w, http.StatusConflict, "User with this email already exists")
		return
	case err != nil:
		s.internalError(w, "signup", err)
		return
	}

	s.setAuthCookie(w, token)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"user": profile})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		errorJSON(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	profile, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		errorJSON(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		s.internalError(w, "login", err)
		return
	}

	s.setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": profile})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": userFrom(r)})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.ListTasks(r.Context(), userFrom(r).ID)
	if err != nil {
		s.internalError(w, "listing tasks", err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req model.NewTask
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := s.store.CreateTask(r.Context(), userFrom(r).ID, req)
	if errors.Is(err, store.ErrValidation) {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.internalError(w, "creating task", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"task": task})
}

// taskUpdateRequest distinguishes a completion toggle from a plain field
// update: when "completed" is present the toggle path runs so the stats
// effect cannot be skipped.
type taskUpdateRequest struct {
	model.TaskUpdate
	Completed *bool `json:"completed"`
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	taskID := chi.URLParam(r, "id")
	userID := userFrom(r).ID

	var task *model.Task
	var err error
	if req.Completed != nil {
		task, err = s.store.SetTaskCompleted(r.Context(), taskID, userID, *req.Completed)
	} else {
		task, err = s.store.UpdateTask(r.Context(), taskID, userID, req.TaskUpdate)
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		errorJSON(w, http.StatusNotFound, "Task not found")
		return
	case errors.Is(err, store.ErrValidation):
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.internalError(w, "updating task", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteTask(r.Context(), chi.URLParam(r, "id"), userFrom(r).ID)
	if err != nil {
		s.internalError(w, "deleting task", err)
		return
	}
	if !deleted {
		errorJSON(w, http.StatusNotFound, "Task not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

type reorderRequest struct {
	TaskOrders []model.TaskOrder `json:"taskOrders"`
}

func (s *Server) handleReorderTasks(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.store.ReorderTasks(r.Context(), userFrom(r).ID, req.TaskOrders); err != nil {
		s.internalError(w, "reordering tasks", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Tasks reordered successfully"})
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.store.GetUserStats(r.Context(), userFrom(r).ID)
	if err != nil {
		s.internalError(w, "fetching user stats", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats":             snapshot,
		"motivationalQuote": stats.RandomQuote(),
	})
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	log.Printf("error %s: %v", op, err)
	errorJSON(w, http.StatusInternalServerError, "Internal server error")
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
