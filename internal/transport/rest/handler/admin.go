package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"jobquest/internal/model"
	"jobquest/internal/service"
	"jobquest/internal/transport/rest/middleware"
)

// AdminHandler serves the admin assessment listing
type AdminHandler struct {
	resultsSvc *service.ResultsService
	logger     *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(resultsSvc *service.ResultsService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{resultsSvc: resultsSvc, logger: logger}
}

// AssessmentListResponse is the body of GET /admin/assessments
type AssessmentListResponse struct {
	Assessments []model.AssessmentSummary `json:"assessments"`
	Count       int                       `json:"count"`
}

// ListAssessments handles GET /admin/assessments?limit=N
func (h *AdminHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	list, err := h.resultsSvc.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.logger.Info("admin listed assessments",
		zap.String("admin_id", middleware.GetAdminID(r.Context())),
		zap.Int("count", len(list)),
	)
	writeJSON(w, http.StatusOK, AssessmentListResponse{Assessments: list, Count: len(list)})
}
