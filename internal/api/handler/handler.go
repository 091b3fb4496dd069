// Package handler provides HTTP handlers for the browse API.
// Handlers work on the caller's session (see package session) and the
// in-process collection engine; only Recommend reaches the network.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/ziyou/internal/api/respond"
	"github.com/albapepper/ziyou/internal/cache"
	"github.com/albapepper/ziyou/internal/catalog"
	"github.com/albapepper/ziyou/internal/config"
	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/session"
)

// Gateway is the part of the recommendation client the handlers report on.
type Gateway interface {
	BreakerState() string
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	catalog  *catalog.Catalog
	cache    *cache.Cache
	sessions *session.Manager
	gateway  Gateway
	cfg      *config.Config
	logger   *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(cat *catalog.Catalog, c *cache.Cache, sessions *session.Manager, gw Gateway, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		catalog:  cat,
		cache:    c,
		sessions: sessions,
		gateway:  gw,
		cfg:      cfg,
		logger:   logger,
	}
}

type sessionKey struct{}

// WithSession returns a context carrying s.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// sessionFrom returns the request's session. The router installs it on every
// /api/v1 route.
func sessionFrom(r *http.Request) *session.Session {
	s, _ := r.Context().Value(sessionKey{}).(*session.Session)
	return s
}

// recommendations returns the session's latest gateway result list, if it
// has one that has not expired.
func (h *Handler) recommendations(s *session.Session) ([]game.Game, bool) {
	if h.cache.Enabled() {
		var games []game.Game
		if h.cache.GetJSON(resultsCacheKey(s.ID), &games) {
			return games, true
		}
		return nil, false
	}
	games := s.Survey.Results()
	return games, games != nil
}

func resultsCacheKey(sessionID string) string {
	return "results:" + sessionID
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":    "Ziyou Browse API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"games":   h.catalog.Len(),
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status, the recommendation breaker state and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"gateway":   h.gateway.BreakerState(),
		"sessions":  h.sessions.Len(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
