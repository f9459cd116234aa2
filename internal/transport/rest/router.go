package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jobquest/internal/metrics"
	"jobquest/internal/questions"
	"jobquest/internal/service"
	"jobquest/internal/transport/rest/handler"
	"jobquest/internal/transport/rest/middleware"
	"jobquest/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Bank              *questions.Bank
	AuthService       *service.AuthService
	SubmissionService *service.SubmissionService
	ResultsService    *service.ResultsService
	WSHub             *ws.Hub
	Logger            *zap.Logger
	Metrics           *metrics.Metrics
	MetricsHandler    http.Handler // optional, served at /metrics
	AllowedOrigins    string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	questionnaireHandler := handler.NewQuestionnaireHandler(c.Bank, c.SubmissionService)
	resultsHandler := handler.NewResultsHandler(c.ResultsService, logger)
	adminHandler := handler.NewAdminHandler(c.ResultsService, logger)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger, c.Metrics))
	r.Use(middleware.Recover(logger))
	r.Use(corsMiddleware(c.AllowedOrigins))

	// Public routes
	r.HandleFunc("/questionnaire", questionnaireHandler.Get).Methods("GET", "OPTIONS")
	r.HandleFunc("/submit_questionnaire", questionnaireHandler.Submit).Methods("POST", "OPTIONS")
	r.HandleFunc("/results/{id}", resultsHandler.Get).Methods("GET", "OPTIONS")
	r.HandleFunc("/results/{id}/analysis.html", resultsHandler.Analysis).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET", "OPTIONS")

	if c.MetricsHandler != nil {
		r.Handle("/metrics", c.MetricsHandler).Methods("GET")
	}

	// Admin routes
	r.HandleFunc("/admin/login", authHandler.Login).Methods("POST", "OPTIONS")
	// WebSocket (token in query param)
	r.HandleFunc("/admin/ws", wsHandler.AdminWS).Methods("GET")

	adminRoutes := r.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)
	adminRoutes.HandleFunc("/assessments", adminHandler.ListAssessments).Methods("GET", "OPTIONS")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not Found"}`))
	})

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
