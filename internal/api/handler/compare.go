package handler

import (
	"net/http"
	"strings"

	"github.com/albapepper/ziyou/internal/api/respond"
	"github.com/albapepper/ziyou/internal/compare"
)

// CompareResponse is the comparison view.
type CompareResponse struct {
	compare.Matrix
	Empty bool `json:"empty"`
}

// GetCompare builds the comparison matrix.
// @Summary Compare games
// @Description Compares up to four catalog games side by side and marks the best value per metric. Without ids the wishlist is compared.
// @Tags compare
// @Produce json
// @Param ids query string false "Comma-separated game ids (first four are used)"
// @Success 200 {object} CompareResponse
// @Router /compare [get]
func (h *Handler) GetCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ids := splitIDs(q.Get("ids"))
	// Only an absent (or empty) parameter means "compare the wishlist"; a
	// list of blanks compares nothing.
	if !q.Has("ids") || q.Get("ids") == "" {
		s := sessionFrom(r)
		s.Lock()
		ids = s.Wishlist.List()
		s.Unlock()
	}
	m := compare.Compare(h.catalog, ids)
	respond.WriteJSONObject(w, http.StatusOK, CompareResponse{Matrix: m, Empty: m.Empty()})
}

func splitIDs(raw string) []string {
	var ids []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
