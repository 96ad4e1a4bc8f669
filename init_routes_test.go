package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akinalp/wpsync/config"
	"github.com/akinalp/wpsync/models"
	"github.com/akinalp/wpsync/pkg/i18n"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Remote: config.RemoteConfig{
			BaseURL:  "http://127.0.0.1:1",
			AuthType: "basic",
			Timeout:  time.Second,
		},
		Auth:      config.AuthConfig{JWTSecret: "s3cret"},
		RateLimit: config.RateLimitConfig{Requests: 1, Window: time.Minute},
	}
}

func newTestMux(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	require.NoError(t, i18n.LoadEmbedded())

	svcs, limiter := initServices(cfg)
	if limiter != nil {
		t.Cleanup(limiter.Stop)
	}

	mux := http.NewServeMux()
	initRoutes(mux, initHandlers(svcs), svcs.Auth, limiter)
	return mux
}

func bearer(t *testing.T, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.TokenClaims{
		ClientID: "test-client",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(h http.Handler, method, target, authorization string) int {
	req := httptest.NewRequest(method, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRoutesAuthAndRateLimit(t *testing.T) {
	cfg := testConfig()
	mux := newTestMux(t, cfg)
	token := bearer(t, cfg.Auth.JWTSecret)

	// Health auth gerektirmez.
	assert.Equal(t, http.StatusOK, serve(mux, http.MethodGet, "/api/health", ""))
	assert.Equal(t, http.StatusOK, serve(mux, http.MethodGet, "/", ""))

	assert.Equal(t, http.StatusUnauthorized, serve(mux, http.MethodGet, "/api/validation/schema-examples", ""))
	assert.Equal(t, http.StatusOK, serve(mux, http.MethodGet, "/api/validation/schema-examples", token))

	// Rate limit sadece yazma endpoint'lerinde; boş body 400 döner ama limit sayacı ilerler.
	assert.Equal(t, http.StatusBadRequest, serve(mux, http.MethodPost, "/api/validation/validate-i18n", token))
	assert.Equal(t, http.StatusTooManyRequests, serve(mux, http.MethodPost, "/api/validation/validate-i18n", token))
	assert.Equal(t, http.StatusOK, serve(mux, http.MethodGet, "/api/validation/schema-examples", token))
}

func TestRoutesOpenWhenAuthDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.JWTSecret = ""
	cfg.RateLimit.Requests = 0
	mux := newTestMux(t, cfg)

	assert.Equal(t, http.StatusOK, serve(mux, http.MethodGet, "/api/validation/schema-examples", ""))
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusBadRequest, serve(mux, http.MethodPost, "/api/sync", ""))
	}
	assert.Equal(t, http.StatusMethodNotAllowed, serve(mux, http.MethodDelete, "/api/sync", ""))
}
