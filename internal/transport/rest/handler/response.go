package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobquest/internal/repository"
	"jobquest/internal/service"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Detail string               `json:"detail"`
	Errors []service.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

// writeServiceError maps a service error to its status code and a client-safe detail
func writeServiceError(w http.ResponseWriter, err error) {
	status := httpStatus(err)
	resp := ErrorResponse{Detail: http.StatusText(status)}

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.Detail = "invalid questionnaire answers"
		resp.Errors = verr.Fields
	case errors.Is(err, repository.ErrNotFound):
		resp.Detail = "assessment not found"
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		resp.Detail = err.Error()
	case status == http.StatusServiceUnavailable:
		resp.Detail = "service temporarily unavailable, please try again later"
	}

	writeJSON(w, status, resp)
}

// httpStatus is the single error-to-status mapping of the REST layer
func httpStatus(err error) int {
	var verr *service.ValidationError
	var serr *service.StoreUnavailableError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.As(err, &serr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
