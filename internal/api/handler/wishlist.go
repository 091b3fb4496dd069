package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/ziyou/internal/api/respond"
	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/metrics"
	"github.com/albapepper/ziyou/internal/session"
)

// WishlistResponse lists the wishlist. Games holds the ids the catalog knows.
type WishlistResponse struct {
	IDs   []string    `json:"ids"`
	Games []game.Game `json:"games"`
	Count int         `json:"count"`
}

// MembershipResponse reports one id's membership after a mutation.
type MembershipResponse struct {
	ID         string `json:"id"`
	Wishlisted bool   `json:"wishlisted"`
	Count      int    `json:"count"`
}

// GetWishlist returns the session's wishlist.
// @Summary Wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} WishlistResponse
// @Router /wishlist [get]
func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Lock()
	defer s.Unlock()
	respond.WriteJSONObject(w, http.StatusOK, WishlistResponse{
		IDs:   s.Wishlist.List(),
		Games: s.Wishlist.Games(h.catalog),
		Count: s.Wishlist.Len(),
	})
}

// ToggleWishlist flips one game's membership.
// @Summary Toggle wishlist membership
// @Tags wishlist
// @Produce json
// @Param id path string true "Game id"
// @Success 200 {object} MembershipResponse
// @Router /wishlist/{id}/toggle [post]
func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	h.mutateWishlist(w, r, "toggle", func(s *session.Session, id string) { s.Wishlist.Toggle(id) })
}

// AddToWishlist adds a game. Adding a present id changes nothing.
// @Summary Add to wishlist
// @Tags wishlist
// @Produce json
// @Param id path string true "Game id"
// @Success 200 {object} MembershipResponse
// @Router /wishlist/{id} [put]
func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	h.mutateWishlist(w, r, "add", func(s *session.Session, id string) { s.Wishlist.Add(id) })
}

// RemoveFromWishlist removes a game. Removing an absent id changes nothing.
// @Summary Remove from wishlist
// @Tags wishlist
// @Produce json
// @Param id path string true "Game id"
// @Success 200 {object} MembershipResponse
// @Router /wishlist/{id} [delete]
func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	h.mutateWishlist(w, r, "remove", func(s *session.Session, id string) { s.Wishlist.Remove(id) })
}

func (h *Handler) mutateWishlist(w http.ResponseWriter, r *http.Request, op string, apply func(*session.Session, string)) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_ID", "game id is required")
		return
	}
	s := sessionFrom(r)
	s.Lock()
	defer s.Unlock()
	apply(s, id)
	metrics.WishlistMutations.WithLabelValues(op).Inc()
	respond.WriteJSONObject(w, http.StatusOK, MembershipResponse{
		ID:         id,
		Wishlisted: s.Wishlist.IsWishlisted(id),
		Count:      s.Wishlist.Len(),
	})
}
