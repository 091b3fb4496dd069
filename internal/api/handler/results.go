package handler

import (
	"net/http"
	"strconv"

	"github.com/albapepper/ziyou/internal/api/respond"
	"github.com/albapepper/ziyou/internal/filter"
	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/sampler"
	"github.com/albapepper/ziyou/internal/session"
)

// Result sources.
const (
	SourceRecommendations = "recommendations"
	SourceCatalog         = "catalog"
)

// GameCard is a game as listed in the results view.
type GameCard struct {
	game.Game
	Wishlisted bool `json:"wishlisted"`
}

// SelectionResponse echoes the active facets; an empty list means the facet
// is unconstrained.
type SelectionResponse struct {
	Genres       []string `json:"genres"`
	Devices      []string `json:"devices"`
	Difficulties []string `json:"difficulties"`
}

// ResultsResponse is the results view.
type ResultsResponse struct {
	Source    string            `json:"source"`
	Total     int               `json:"total"`
	Key       uint64            `json:"key"`
	Games     []GameCard        `json:"games"`
	Available filter.Options    `json:"available"`
	Selection SelectionResponse `json:"selection"`
	Wishlist  int               `json:"wishlistCount"`
}

// GetResults returns a random sample of the filtered result list.
// @Summary Results view
// @Description Filters the session's latest recommendations (or the catalog when there are none) and returns a random sample. The sample is stable until the filters change or a reshuffle is requested.
// @Tags results
// @Produce json
// @Param genres query string false "Comma-separated genres"
// @Param devices query string false "Comma-separated devices"
// @Param difficulty query string false "Comma-separated difficulties"
// @Param count query int false "Sample size (default DISPLAY_COUNT)"
// @Param shuffle query bool false "Re-roll the sample"
// @Success 200 {object} ResultsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /results [get]
func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := filter.ParseSelection(q)

	count := h.cfg.DisplayCount
	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_COUNT", "count must be a positive integer")
			return
		}
		count = n
	}
	shuffle, _ := strconv.ParseBool(q.Get("shuffle"))

	s := sessionFrom(r)
	games, source := h.resultSource(s)

	s.Lock()
	defer s.Unlock()
	view := s.Results(sel, filter.Apply(games, sel), count)
	if shuffle {
		view = s.Reshuffle()
	}
	respond.WriteJSONObject(w, http.StatusOK, h.resultsResponse(s, source, games, sel, view))
}

// Reshuffle re-rolls the results sample over the same filtered list.
// @Summary Reshuffle results
// @Description Draws a new random sample from the currently filtered list.
// @Tags results
// @Produce json
// @Success 200 {object} ResultsResponse
// @Router /results/reshuffle [post]
func (h *Handler) Reshuffle(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	games, source := h.resultSource(s)

	s.Lock()
	defer s.Unlock()
	sel := s.Selection()
	count := s.ViewCount()
	if count == 0 {
		count = h.cfg.DisplayCount
	}
	s.Results(sel, filter.Apply(games, sel), count)
	view := s.Reshuffle()
	respond.WriteJSONObject(w, http.StatusOK, h.resultsResponse(s, source, games, sel, view))
}

func (h *Handler) resultSource(s *session.Session) ([]game.Game, string) {
	if games, ok := h.recommendations(s); ok {
		return games, SourceRecommendations
	}
	return h.catalog.All(), SourceCatalog
}

// resultsResponse must be called with s locked.
func (h *Handler) resultsResponse(s *session.Session, source string, games []game.Game, sel filter.Selection, view *sampler.View) ResultsResponse {
	shown := view.Shown()
	cards := make([]GameCard, len(shown))
	for i, g := range shown {
		cards[i] = GameCard{Game: g, Wishlisted: s.Wishlist.IsWishlisted(g.ID)}
	}
	return ResultsResponse{
		Source:    source,
		Total:     view.Total(),
		Key:       view.Key(),
		Games:     cards,
		Available: filter.Available(games),
		Selection: SelectionResponse{
			Genres:       sel.Genres.Values(),
			Devices:      sel.Devices.Values(),
			Difficulties: sel.Difficulties.Values(),
		},
		Wishlist: s.Wishlist.Len(),
	}
}
