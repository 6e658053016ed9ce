package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkhop/internal/models"
	"linkhop/internal/repository/inmemory"
	"linkhop/internal/service"
)

func newDiagnosticRouter(store *inmemory.InMemory, testCode string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	diagnosticService := service.NewDiagnosticService(store, zerolog.Nop())
	dc := NewDiagnosticController(diagnosticService, testCode)

	router := gin.New()
	router.GET("/test-tracking", dc.TestTracking)
	return router
}

func TestTestTracking_IncrementsTestCode(t *testing.T) {
	store := inmemory.New()
	store.SeedPrivate("test123", "https://example.com/probe", 10)

	router := newDiagnosticRouter(store, "test123")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test-tracking", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.ClickTestResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "test123", result.Code)
	assert.Equal(t, int64(10), result.PreviousCount)
	assert.Equal(t, int64(11), result.NewCount)
}

func TestTestTracking_MissingTestLink(t *testing.T) {
	router := newDiagnosticRouter(inmemory.New(), "test123")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test-tracking", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
