package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/ziyou/internal/api/respond"
	"github.com/albapepper/ziyou/internal/theme"
)

// ThemeResponse carries the active theme.
type ThemeResponse struct {
	Theme theme.Name `json:"theme"`
}

// GetTheme returns the active theme.
// @Summary Current theme
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeResponse
// @Router /theme [get]
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Lock()
	defer s.Unlock()
	respond.WriteJSONObject(w, http.StatusOK, ThemeResponse{Theme: s.Theme.Current()})
}

// ToggleTheme flips between cyber and dopamine.
// @Summary Toggle theme
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeResponse
// @Router /theme/toggle [post]
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Lock()
	defer s.Unlock()
	respond.WriteJSONObject(w, http.StatusOK, ThemeResponse{Theme: s.Theme.Toggle()})
}

// SetTheme switches to a named theme.
// @Summary Set theme
// @Tags theme
// @Produce json
// @Param name path string true "Theme name" Enums(cyber, dopamine)
// @Success 200 {object} ThemeResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /theme/{name} [put]
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	name := theme.Name(chi.URLParam(r, "name"))
	if !name.Valid() {
		respond.WriteError(w, http.StatusBadRequest, "UNKNOWN_THEME", "theme must be cyber or dopamine")
		return
	}
	s := sessionFrom(r)
	s.Lock()
	defer s.Unlock()
	s.Theme.Set(name)
	respond.WriteJSONObject(w, http.StatusOK, ThemeResponse{Theme: s.Theme.Current()})
}
