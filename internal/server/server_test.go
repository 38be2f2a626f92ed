package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/model"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "0",
		Env:             "test",
		SessionSecret:   "test-secret",
		SessionExpiry:   time.Hour,
		RateLimitRPS:    100,
		RateLimitBurst:  100,
		MetricsEnabled:  true,
		DefaultLength:   8,
		MaxLength:       256,
		WidgetMinLength: 6,
		WidgetMaxLength: 101,
	}
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, NewRouter(t.Context(), testConfig()), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestGenerateRoute(t *testing.T) {
	rec := do(t, NewRouter(t.Context(), testConfig()), http.MethodPost, "/api/v1/generate", `{"length":16,"symbols":true}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, 16)
	assert.Equal(t, 71, resp.AlphabetSize)
}

func TestSessionEventsRequireToken(t *testing.T) {
	rec := do(t, NewRouter(t.Context(), testConfig()), http.MethodPost, "/api/v1/session/events", `{"type":"regenerate"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionRoutes(t *testing.T) {
	h := NewRouter(t.Context(), testConfig())

	rec := do(t, h, http.MethodPost, "/api/v1/session", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var started model.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))

	rec = do(t, h, http.MethodPost, "/api/v1/session/events", `{"type":"symbols"}`, started.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	var changed model.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &changed))
	assert.True(t, changed.Symbols)
	assert.Len(t, changed.Password, 8)
}

func TestMetricsRoute(t *testing.T) {
	cfg := testConfig()
	rec := do(t, NewRouter(t.Context(), cfg), http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	cfg.MetricsEnabled = false
	rec = do(t, NewRouter(t.Context(), cfg), http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimitApplied(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	h := NewRouter(t.Context(), cfg)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/alphabet", "", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/api/v1/alphabet", "", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "", "").Code)
}
