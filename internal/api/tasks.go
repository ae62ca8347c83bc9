package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vipinsinghbagri/taskgate/internal/auth"
	"github.com/vipinsinghbagri/taskgate/internal/task"
)

// taskRequest is the request body for creating and updating tasks.
type taskRequest struct {
	Title string `json:"title"`
}

// handleListTasks returns tasks visible to the caller: admins see every
// task, users see their own.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeUnauthorized(w, "authorization required")
		return
	}

	var (
		tasks []task.Task
		err   error
	)
	if claims.Role == auth.RoleAdmin {
		tasks, err = s.tasks.List(r.Context())
	} else {
		tasks, err = s.tasks.ListByOwner(r.Context(), claims.Subject)
	}
	if err != nil {
		s.logger.Error("listing tasks failed", "error", err)
		writeInternalError(w, "failed to list tasks")
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// handleCreateTask creates a task owned by the caller. Ownership always
// comes from the verified identity, never from the request body.
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeUnauthorized(w, "authorization required")
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Title == "" {
		writeBadRequest(w, "title is required")
		return
	}

	t := &task.Task{
		Title:   req.Title,
		OwnerID: claims.Subject,
	}
	if err := s.tasks.Create(r.Context(), t); err != nil {
		s.logger.Error("creating task failed", "error", err)
		writeInternalError(w, "failed to create task")
		return
	}

	s.broadcastTaskEvent("task.created", t)
	writeJSON(w, http.StatusCreated, t)
}

// handleGetTask returns a single task after the ownership check.
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	t, _, ok := s.loadTaskForAccess(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// handleUpdateTask changes a task's title. An empty or absent title keeps
// the current one.
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	t, _, ok := s.loadTaskForAccess(w, r)
	if !ok {
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	title := req.Title
	if title == "" {
		title = t.Title
	}

	if err := s.tasks.UpdateTitle(r.Context(), t.ID, title); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			writeNotFound(w, "task not found")
			return
		}
		s.logger.Error("updating task failed", "error", err, "task_id", t.ID)
		writeInternalError(w, "failed to update task")
		return
	}

	updated, err := s.tasks.GetByID(r.Context(), t.ID)
	if err != nil {
		s.logger.Error("reloading task failed", "error", err, "task_id", t.ID)
		writeInternalError(w, "failed to update task")
		return
	}

	s.broadcastTaskEvent("task.updated", updated)
	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteTask removes a task after the ownership check.
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	t, _, ok := s.loadTaskForAccess(w, r)
	if !ok {
		return
	}

	if err := s.tasks.Delete(r.Context(), t.ID); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			writeNotFound(w, "task not found")
			return
		}
		s.logger.Error("deleting task failed", "error", err, "task_id", t.ID)
		writeInternalError(w, "failed to delete task")
		return
	}

	s.broadcastTaskEvent("task.deleted", t)
	writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}

// loadTaskForAccess fetches the task from the URL and runs the ownership
// policy. Not-found is reported before the policy, so a caller cannot
// probe for record existence through a 403. On failure the response has
// already been written and ok is false.
func (s *Server) loadTaskForAccess(w http.ResponseWriter, r *http.Request) (*task.Task, *auth.Claims, bool) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeUnauthorized(w, "authorization required")
		return nil, nil, false
	}

	id := chi.URLParam(r, "id")
	t, err := s.tasks.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			writeNotFound(w, "task not found")
			return nil, nil, false
		}
		s.logger.Error("loading task failed", "error", err, "task_id", id)
		writeInternalError(w, "failed to load task")
		return nil, nil, false
	}

	if !auth.CanAccess(claims, t.OwnerID) {
		writeForbidden(w, "forbidden")
		return nil, nil, false
	}

	return t, claims, true
}

// broadcastTaskEvent publishes a task change to WebSocket clients.
func (s *Server) broadcastTaskEvent(eventType string, t *task.Task) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(eventType, t)
}
