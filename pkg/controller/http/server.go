package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/issue-triage/pkg/cli/config"
	slackCtrl "github.com/secmon-lab/issue-triage/pkg/controller/slack"
	"github.com/secmon-lab/issue-triage/pkg/domain/interfaces"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router        chi.Router
	triageHandler *TriageHandler
	slackHandler  *slackCtrl.Handler
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	triageUC interfaces.Triage,
	slackConfig *config.Slack,
	requestTimeout time.Duration,
	slackOptions ...slackCtrl.Option,
) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	triageHandler := NewTriageHandler(triageUC, requestTimeout)
	slackOptions = append([]slackCtrl.Option{slackCtrl.WithTimeout(requestTimeout)}, slackOptions...)
	slackHandler := slackCtrl.NewHandler(slackConfig, triageUC, slackOptions...)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Post("/triage", triageHandler.HandleTriage)
	})

	router.Route("/hooks/slack", func(r chi.Router) {
		r.Post("/command", slackHandler.HandleCommand)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:        router,
		triageHandler: triageHandler,
		slackHandler:  slackHandler,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "issue-triage",
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}
