// Package gateway implements the API gateway: a reverse proxy per
// resource family with a static degraded-mode fallback when the
// downstream is unreachable.
package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BharAnu2109/Cricket/internal/config"
	"github.com/BharAnu2109/Cricket/internal/metrics"
)

// Gateway routes the four resource families to their backends.
type Gateway struct {
	engine *gin.Engine
	log    zerolog.Logger
}

// New wires the proxy routes from config. Families without a configured
// backend answer with their fallback payload unconditionally, so a
// partially deployed platform still degrades gracefully instead of 404ing.
func New(cfg config.GatewayConfig, logger zerolog.Logger, m *metrics.Metrics) (*Gateway, error) {
	log := logger.With().Str("module", "gateway").Logger()

	engine := gin.New()
	engine.Use(gin.Recovery())
	if m != nil {
		engine.Use(m.Middleware())
		engine.GET("/metrics", m.Handler())
	}
	engine.GET("/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
	})

	backends := map[string]string{
		"players":    cfg.Players,
		"teams":      cfg.Teams,
		"matches":    cfg.Matches,
		"statistics": cfg.Statistics,
	}

	for _, family := range Families() {
		family := family
		handler, err := familyHandler(family, backends[family], cfg, log)
		if err != nil {
			return nil, err
		}
		engine.Any("/api/"+family, handler)
		engine.Any("/api/"+family+"/*rest", handler)

		// Explicit fallback routes, usable as circuit-breaker targets.
		engine.GET("/fallback/"+family, func(c *gin.Context) {
			writeFallback(c.Writer, family)
		})
	}

	return &Gateway{engine: engine, log: log}, nil
}

// Engine exposes the router for serving and for tests.
func (g *Gateway) Engine() *gin.Engine { return g.engine }

func familyHandler(family, backend string, cfg config.GatewayConfig, log zerolog.Logger) (gin.HandlerFunc, error) {
	if backend == "" {
		log.Warn().Str("family", family).Msg("no backend configured; serving fallback")
		return func(c *gin.Context) {
			writeFallback(c.Writer, family)
		}, nil
	}

	target, err := url.Parse(backend)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url for %s: %w", family, err)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	timeout := time.Duration(cfg.ProxyTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	proxy.Transport = &http.Transport{
		ResponseHeaderTimeout: timeout,
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error().Err(err).
			Str("family", family).
			Str("path", r.URL.Path).
			Msg("downstream unreachable; serving fallback")
		writeFallback(w, family)
	}

	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}, nil
}

func writeFallback(w http.ResponseWriter, family string) {
	payload, ok := Fallback(family)
	if !ok {
		http.Error(w, "unknown service", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = json.NewEncoder(w).Encode(payload)
}
