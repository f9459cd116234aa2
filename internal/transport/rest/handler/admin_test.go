package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"jobquest/internal/config"
	"jobquest/internal/repository"
	"jobquest/internal/service"
	"jobquest/internal/transport/rest/middleware"
)

func TestListAssessmentsLogsAdmin(t *testing.T) {
	repo, err := repository.NewMemoryAssessmentRepo(10)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	auth := service.NewAuthService(config.AuthConfig{Username: "admin", Password: "pw", JWTSecret: "secret"})
	login, err := auth.Login("admin", "pw")
	require.NoError(t, err)

	h := NewAdminHandler(service.NewResultsService(repo, nil, zap.NewNop(), nil), zap.New(core))
	guarded := middleware.NewAuthMiddleware(auth).RequireAdmin(http.HandlerFunc(h.ListAssessments))

	req := httptest.NewRequest(http.MethodGet, "/admin/assessments", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	entries := logs.FilterMessage("admin listed assessments").All()
	require.Len(t, entries, 1)
	assert.Equal(t, login.AdminID, entries[0].ContextMap()["admin_id"])
	assert.EqualValues(t, 0, entries[0].ContextMap()["count"])
}

func TestListAssessmentsRejectsBadLimit(t *testing.T) {
	repo, err := repository.NewMemoryAssessmentRepo(10)
	require.NoError(t, err)
	h := NewAdminHandler(service.NewResultsService(repo, nil, zap.NewNop(), nil), zap.NewNop())

	for _, limit := range []string{"abc", "0", "-3"} {
		rec := httptest.NewRecorder()
		h.ListAssessments(rec, httptest.NewRequest(http.MethodGet, "/admin/assessments?limit="+limit, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
	}
}
