package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkhop/internal/repository/inmemory"
	"linkhop/internal/service"
)

const homeURL = "https://linkhop.example.com/"

func newRedirectRouter(store *inmemory.InMemory) *gin.Engine {
	gin.SetMode(gin.TestMode)

	resolver := service.NewResolverService(store, nil, zerolog.Nop())
	rc := NewRedirectController(resolver, homeURL)

	router := gin.New()
	router.GET("/s", rc.RedirectQuery)
	router.GET("/s/:code", rc.Redirect)
	return router
}

func TestRedirect_KnownCode(t *testing.T) {
	store := inmemory.New()
	store.SeedPrivate("abc123", "https://example.com/target", 5)
	store.SeedPublic("abc123", "https://example.com/target", 5)

	router := newRedirectRouter(store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/s/abc123", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://example.com/target", rec.Header().Get("Location"))

	// Both counters advanced by exactly one.
	pub, ok := store.PublicCount("abc123")
	require.True(t, ok)
	assert.Equal(t, int64(6), pub)

	priv, ok := store.PrivateCount("abc123")
	require.True(t, ok)
	assert.Equal(t, int64(6), priv)
}

func TestRedirect_UnknownCodeFallsBackHome(t *testing.T) {
	router := newRedirectRouter(inmemory.New())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/s/doesnotexist", nil)
	router.ServeHTTP(rec, req)

	// Never a 404 page: visitors land on the home page instead.
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, homeURL, rec.Header().Get("Location"))
}

func TestRedirect_QueryVariant(t *testing.T) {
	store := inmemory.New()
	store.SeedPublic("qr7", "https://example.com/q", 0)

	router := newRedirectRouter(store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/s?code=qr7", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://example.com/q", rec.Header().Get("Location"))

	pub, _ := store.PublicCount("qr7")
	assert.Equal(t, int64(1), pub)
}

func TestRedirect_EmptyCodeFallsBackHome(t *testing.T) {
	router := newRedirectRouter(inmemory.New())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/s", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, homeURL, rec.Header().Get("Location"))
}

func TestRedirect_RepeatVisitsKeepCounting(t *testing.T) {
	store := inmemory.New()
	store.SeedPublic("rep", "https://example.com/r", 0)

	router := newRedirectRouter(store)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/s/rep", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	}

	pub, _ := store.PublicCount("rep")
	assert.Equal(t, int64(3), pub)
}
