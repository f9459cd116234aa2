package handler

import (
	"encoding/json"
	"net/http"

	"jobquest/internal/model"
	"jobquest/internal/questions"
	"jobquest/internal/service"
)

// maxSubmitBody bounds the submit request body
const maxSubmitBody = 64 << 10

// QuestionnaireHandler serves the question bank and accepts submissions
type QuestionnaireHandler struct {
	bank          *questions.Bank
	submissionSvc *service.SubmissionService
}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler(bank *questions.Bank, submissionSvc *service.SubmissionService) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		bank:          bank,
		submissionSvc: submissionSvc,
	}
}

// QuestionnaireResponse is the body of GET /questionnaire
type QuestionnaireResponse struct {
	Questions []model.Question `json:"questions"`
}

// SubmitRequest is the body of POST /submit_questionnaire
type SubmitRequest struct {
	Answers model.Answers `json:"answers"`
}

// SubmitResponse is returned after a successful submission
type SubmitResponse struct {
	AssessmentID string `json:"assessment_id"`
}

// Get handles GET /questionnaire
func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, QuestionnaireResponse{Questions: h.bank.List()})
}

// Submit handles POST /submit_questionnaire
func (h *QuestionnaireHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSubmitBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.submissionSvc.Submit(r.Context(), req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SubmitResponse{AssessmentID: id})
}
