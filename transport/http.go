// Package transport exposes the dialog engine at the messaging boundary: an
// HTTP endpoint for request/response style integrations and a WebSocket
// endpoint for chat-network bridges. Both enforce the configured user
// allow-list; everything past this boundary is the engine's concern.
package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/logging"
)

// Bot is the minimal engine surface the transport needs.
type Bot interface {
	Handle(ctx context.Context, userID, text string) (core.Response, error)
}

// Handler serves the messaging API.
type Handler struct {
	bot     Bot
	allowed map[string]struct{}
	logger  logging.Logger
}

// NewHandler creates a Handler. An empty allow-list admits every user.
func NewHandler(bot Bot, allowedUsers []string, logger logging.Logger) *Handler {
	allowed := make(map[string]struct{}, len(allowedUsers))
	for _, u := range allowedUsers {
		allowed[u] = struct{}{}
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Handler{bot: bot, allowed: allowed, logger: logger}
}

// Router builds the chi router with the standard middleware stack.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Post("/v1/messages", h.postMessage)
	r.Get("/v1/ws", h.serveWS)
	return r
}

func (h *Handler) allowedUser(userID string) bool {
	if len(h.allowed) == 0 {
		return true
	}
	_, ok := h.allowed[userID]
	return ok
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	var in core.Inbound
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if !h.allowedUser(in.UserID) {
		// Unauthorized users are dropped silently, mirroring the allow-list
		// behavior of the chat-network integration.
		h.logger.Info("message from unauthorized user dropped", "user_id", in.UserID)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp, err := h.bot.Handle(r.Context(), in.UserID, in.Text)
	if err != nil {
		// Internal errors are operator-facing; the user still gets the
		// response text the engine produced for this turn.
		h.logger.Error("turn failed", "user_id", in.UserID, "error", err)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
