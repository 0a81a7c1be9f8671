package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharAnu2109/Cricket/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFallback_PayloadTextPerFamily(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"players", "Player service is currently unavailable. Please try again later."},
		{"teams", "Team service is currently unavailable. Please try again later."},
		{"matches", "Match service is currently unavailable. Please try again later."},
		{"statistics", "Statistics service is currently unavailable. Please try again later."},
	}
	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			payload, ok := Fallback(tt.family)
			require.True(t, ok)
			assert.Equal(t, tt.want, payload.Message)
		})
	}
}

func TestFallback_UnknownFamily(t *testing.T) {
	_, ok := Fallback("tournaments")
	assert.False(t, ok)
}

func TestFamilies_CoverEveryFallback(t *testing.T) {
	families := Families()
	assert.Len(t, families, 4)
	for _, f := range families {
		_, ok := Fallback(f)
		assert.True(t, ok, "family %s has no fallback payload", f)
	}
}

func newGateway(t *testing.T, cfg config.GatewayConfig) *Gateway {
	t.Helper()
	gw, err := New(cfg, zerolog.Nop(), nil)
	require.NoError(t, err)
	return gw
}

func get(gw *Gateway, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	// Give the request a cancellable context, as every real server request
	// has; otherwise ReverseProxy takes its legacy CloseNotifier path,
	// which httptest.ResponseRecorder does not implement.
	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()
	gw.Engine().ServeHTTP(w, req.WithContext(ctx))
	return w
}

func decodeFallback(t *testing.T, w *httptest.ResponseRecorder) FallbackPayload {
	t.Helper()
	var payload FallbackPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestGateway_UnconfiguredFamilyAlwaysDegrades(t *testing.T) {
	gw := newGateway(t, config.GatewayConfig{})

	for _, path := range []string{"/api/teams", "/api/teams/api/v1/teams/5"} {
		w := get(gw, path)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		assert.Equal(t, "Team service is currently unavailable. Please try again later.",
			decodeFallback(t, w).Message)
	}
}

func TestGateway_ProxiesToConfiguredBackend(t *testing.T) {
	var seenPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer backend.Close()

	gw := newGateway(t, config.GatewayConfig{Players: backend.URL})

	w := get(gw, "/api/players/api/v1/players?limit=5")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"total":0}`, w.Body.String())
	assert.Equal(t, "/api/players/api/v1/players", seenPath, "path passes through untouched")
}

func TestGateway_BackendErrorStatusPassesThrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
	}))
	defer backend.Close()

	gw := newGateway(t, config.GatewayConfig{Players: backend.URL})

	// A reachable backend's own errors are not a degraded condition.
	w := get(gw, "/api/players/api/v1/players/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGateway_UnreachableBackendServesFallback(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // nothing is listening anymore

	gw := newGateway(t, config.GatewayConfig{Players: backend.URL, ProxyTimeout: 1})

	w := get(gw, "/api/players/api/v1/players")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Player service is currently unavailable. Please try again later.",
		decodeFallback(t, w).Message)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestGateway_ExplicitFallbackRoutes(t *testing.T) {
	gw := newGateway(t, config.GatewayConfig{})

	for _, family := range Families() {
		w := get(gw, "/fallback/"+family)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, family)
		payload, _ := Fallback(family)
		assert.Equal(t, payload.Message, decodeFallback(t, w).Message)
	}
}

func TestGateway_RejectsInvalidBackendURL(t *testing.T) {
	_, err := New(config.GatewayConfig{Matches: "://not-a-url"}, zerolog.Nop(), nil)
	assert.Error(t, err)
}

func TestGateway_LivenessProbe(t *testing.T) {
	gw := newGateway(t, config.GatewayConfig{})
	w := get(gw, "/live")
	assert.Equal(t, http.StatusOK, w.Code)
}
