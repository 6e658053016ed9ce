package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkhop/internal/jwt"
	"linkhop/internal/middleware"
	"linkhop/internal/models"
	"linkhop/internal/repository/inmemory"
	"linkhop/internal/service"
)

func newAdminRouter(store *inmemory.InMemory, jwtService *jwt.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	syncService := service.NewSyncService(store, zerolog.Nop())
	diagnosticService := service.NewDiagnosticService(store, zerolog.Nop())
	ac := NewAdminController(syncService, diagnosticService)

	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService))
	{
		admin.POST("/sync-short-links", ac.SyncShortLinks)
		admin.GET("/sync-short-links", ac.SyncStatus)
		admin.GET("/links/:code", ac.GetLinkStats)
	}
	return router
}

func adminToken(t *testing.T, jwtService *jwt.JWTService) string {
	t.Helper()
	token, err := jwtService.GenerateToken("ops")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAdmin_RequiresToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour)
	router := newAdminRouter(inmemory.New(), jwtService)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/admin/sync-short-links", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAdmin_RejectsTokenFromWrongSecret(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour)
	router := newAdminRouter(inmemory.New(), jwtService)

	other := jwt.NewJWTService("other-secret", time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/sync-short-links", nil)
	req.Header.Set("Authorization", adminToken(t, other))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdmin_SyncStatus(t *testing.T) {
	store := inmemory.New()
	store.SeedPrivate("A", "https://example.com/a", 0)
	store.SeedPrivate("B", "https://example.com/b", 0)
	store.SeedPrivate("C", "https://example.com/c", 0)
	store.SeedPublic("A", "https://example.com/a", 0)

	jwtService := jwt.NewJWTService("secret", time.Hour)
	router := newAdminRouter(store, jwtService)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/sync-short-links", nil)
	req.Header.Set("Authorization", adminToken(t, jwtService))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status models.SyncStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, 3, status.PrivateCount)
	assert.Equal(t, 1, status.PublicCount)
	assert.Equal(t, 2, status.MissingCount)
	assert.ElementsMatch(t, []string{"B", "C"}, status.MissingLinks)
	assert.True(t, status.NeedsSync)
}

func TestAdmin_SyncThenResync(t *testing.T) {
	store := inmemory.New()
	store.SeedPrivate("A", "https://example.com/a", 4)
	store.SeedPrivate("B", "https://example.com/b", 0)

	jwtService := jwt.NewJWTService("secret", time.Hour)
	router := newAdminRouter(store, jwtService)

	runSync := func() map[string]json.RawMessage {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/sync-short-links", nil)
		req.Header.Set("Authorization", adminToken(t, jwtService))
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	body := runSync()
	var stats models.SyncStats
	require.NoError(t, json.Unmarshal(body["stats"], &stats))
	assert.Equal(t, 2, stats.TotalPrivateLinks)
	assert.Equal(t, 2, stats.SyncedLinks)
	assert.Equal(t, 0, stats.Errors)
	assert.NotContains(t, body, "errors")

	// Idempotent: a second run stages nothing.
	body = runSync()
	require.NoError(t, json.Unmarshal(body["stats"], &stats))
	assert.Equal(t, 0, stats.SyncedLinks)
	assert.Equal(t, 2, stats.ExistingPublicLinks)
}

func TestAdmin_GetLinkStats(t *testing.T) {
	store := inmemory.New()
	store.SeedPrivate("abc123", "https://example.com/target", 5)
	store.SeedPublic("abc123", "https://example.com/target", 7)

	jwtService := jwt.NewJWTService("secret", time.Hour)
	router := newAdminRouter(store, jwtService)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/links/abc123", nil)
	req.Header.Set("Authorization", adminToken(t, jwtService))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"private_count":5`)
	assert.Contains(t, rec.Body.String(), `"public_count":7`)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/links/missing", nil)
	req.Header.Set("Authorization", adminToken(t, jwtService))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
