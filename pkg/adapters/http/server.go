// Package http exposes the bot over a small JSON API. It is a reference
// transport: one endpoint accepting normalized intents and returning the
// engine's reply, plus a health check.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rankery/rankery/internal/logging"
	"github.com/rankery/rankery/pkg/domain"
)

// Handler is the part of the bot this adapter needs.
type Handler interface {
	Handle(ctx context.Context, in domain.Intent) (domain.Reply, error)
}

// Server routes HTTP requests to the bot.
type Server struct {
	bot    Handler
	logger *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler builds the HTTP handler for the bot.
func NewHandler(bot Handler, opts ...Option) http.Handler {
	s := &Server{bot: bot, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Post("/v1/intents", s.postIntent)
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) postIntent(w http.ResponseWriter, r *http.Request) {
	var in domain.Intent
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid intent payload")
		return
	}
	if in.UserID == "" || in.Kind == "" {
		s.writeError(w, http.StatusBadRequest, "user_id and kind are required")
		return
	}

	reply, err := s.bot.Handle(r.Context(), in)
	if err != nil {
		s.logger.Error("intent handling failed", "user", in.UserID, "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reply); err != nil {
		s.logger.Error("failed to encode reply", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
