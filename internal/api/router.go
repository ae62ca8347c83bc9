package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vipinsinghbagri/taskgate/internal/auth"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check (no auth required)
		r.Get("/health", s.handleHealth)

		// Auth endpoints (no auth required)
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		// WebSocket upgrade. Browsers cannot set an Authorization header
		// on the handshake, so auth is the single-use ticket obtained
		// from the gated /auth/ws-ticket endpoint.
		r.Get("/ws", s.handleWebSocket)

		// Protected routes: any authenticated identity
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth(auth.NewGate(s.tokens)))

			r.Get("/auth/me", s.handleMe)

			// WS ticket requires authentication - user must be logged in to request a ticket
			r.Post("/auth/ws-ticket", s.handleWSTicket)

			// Task endpoints; ownership is enforced per record in the handlers
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", s.handleListTasks)
				r.Post("/", s.handleCreateTask)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.handleGetTask)
					r.Put("/", s.handleUpdateTask)
					r.Delete("/", s.handleDeleteTask)
				})
			})
		})

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth(auth.NewGate(s.tokens, auth.RoleAdmin)))

			r.Get("/users", s.handleListUsers)
		})
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
