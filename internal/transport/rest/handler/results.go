package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jobquest/internal/render"
	"jobquest/internal/service"
)

// ResultsHandler serves stored assessments
type ResultsHandler struct {
	resultsSvc *service.ResultsService
	logger     *zap.Logger
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultsSvc *service.ResultsService, logger *zap.Logger) *ResultsHandler {
	return &ResultsHandler{resultsSvc: resultsSvc, logger: logger}
}

// Get handles GET /results/{id}
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.resultsSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, a.Results())
}

// Analysis handles GET /results/{id}/analysis.html
func (h *ResultsHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	a, err := h.resultsSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	body, err := render.Analysis(a.Profile)
	if err != nil {
		h.logger.Error("failed to render analysis", zap.String("assessment_id", a.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render analysis")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
