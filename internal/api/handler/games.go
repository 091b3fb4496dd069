package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/albapepper/ziyou/internal/api/respond"
	"github.com/albapepper/ziyou/internal/cache"
)

// ListGames returns the whole catalog.
// @Summary List catalog games
// @Description Returns every game of the bundled catalog in catalog order. Supports ETag revalidation.
// @Tags catalog
// @Produce json
// @Success 200 {array} game.Game
// @Success 304 "Not modified"
// @Router /games [get]
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	h.writeCached(w, r, "catalog:all", func() (any, bool) {
		return h.catalog.All(), true
	})
}

// GetGame returns one catalog game.
// @Summary Get a catalog game
// @Description Returns one game by id. Supports ETag revalidation.
// @Tags catalog
// @Produce json
// @Param id path string true "Game id"
// @Success 200 {object} game.Game
// @Success 304 "Not modified"
// @Failure 404 {object} respond.ErrorResponse
// @Router /games/{id} [get]
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.writeCached(w, r, "catalog:game:"+id, func() (any, bool) {
		return h.catalog.Lookup(id)
	})
}

// writeCached serves the encoded value under key, building it with load on a
// miss. load reports false when there is nothing to serve.
func (h *Handler) writeCached(w http.ResponseWriter, r *http.Request, key string, load func() (any, bool)) {
	ttl := cache.TTLCatalog

	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, ok := load()
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Game not found")
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Failed to encode catalog response", "key", key, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "Failed to encode response")
		return
	}

	etag := h.cache.Set(key, raw, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, raw, etag, ttl, false)
}
