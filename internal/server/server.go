package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UpdateProcessor consumes decoded Telegram updates
type UpdateProcessor interface {
	ProcessUpdate(u tele.Update)
}

// Server exposes the webhook and health endpoints
type Server struct {
	router chi.Router
	bot    UpdateProcessor
	logger *zap.Logger
}

// New creates the HTTP server routing webhook updates into the bot
func New(bot UpdateProcessor, webhookPath string, logger *zap.Logger) *Server {
	s := &Server{
		bot:    bot,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Get("/", s.handleHealth)
	r.Post(webhookPath, s.handleWebhook)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleWebhook accepts one Telegram update per request. Malformed
// payloads are acknowledged with ok:false and HTTP 200 so Telegram does
// not keep redelivering them.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update tele.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.logger.Warn("Invalid webhook payload", zap.Error(err))
		writeJSON(w, map[string]interface{}{"ok": false, "error": "invalid payload"})
		return
	}

	s.bot.ProcessUpdate(update)
	writeJSON(w, map[string]interface{}{"ok": true})
}

// handleHealth returns a static liveness payload
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}
