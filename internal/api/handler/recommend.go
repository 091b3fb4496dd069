package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/albapepper/ziyou/internal/api/respond"
	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/gateway"
	"github.com/albapepper/ziyou/internal/profile"
	"github.com/albapepper/ziyou/internal/session"
	"github.com/albapepper/ziyou/internal/survey"
)

const maxProfileBytes = 64 << 10

// RecommendResponse is the outcome of a successful submission.
type RecommendResponse struct {
	Count int         `json:"count"`
	Games []game.Game `json:"games"`
}

// Recommend submits a completed profile to the recommendation service.
// @Summary Submit the survey
// @Description Sends the player profile to the recommendation service and stores the returned games as the session's results. Only one submission per session may be in flight.
// @Tags survey
// @Accept json
// @Produce json
// @Param profile body profile.Profile true "Player profile"
// @Success 200 {object} RecommendResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxProfileBytes)).Decode(&p); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be a player profile", err.Error())
		return
	}

	s := sessionFrom(r)
	if err := s.Survey.Fill(p); err != nil {
		h.writeSubmitError(w, err)
		return
	}
	games, err := s.Survey.Submit(r.Context())
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	h.storeRecommendations(s, games)
	respond.WriteJSONObject(w, http.StatusOK, RecommendResponse{Count: len(games), Games: games})
}

// storeRecommendations makes games the session's results for GetResults.
func (h *Handler) storeRecommendations(s *session.Session, games []game.Game) {
	if _, err := h.cache.SetJSON(resultsCacheKey(s.ID), games, h.cfg.ResultsTTL); err != nil {
		h.logger.Warn("Failed to cache recommendations", "session", s.ID, "error", err)
	}
}

func (h *Handler) writeSubmitError(w http.ResponseWriter, err error) {
	var (
		verr *profile.ValidationError
		gerr *gateway.GatewayError
	)
	switch {
	case errors.Is(err, survey.ErrSubmissionInFlight):
		respond.WriteError(w, http.StatusConflict, "SUBMISSION_IN_FLIGHT", "A recommendation request is already running")
	case errors.Is(err, survey.ErrCannotProceed):
		respond.WriteError(w, http.StatusBadRequest, "CANNOT_PROCEED", "The current step needs at least one answer")
	case errors.Is(err, survey.ErrNotLastStep):
		respond.WriteError(w, http.StatusBadRequest, "INCOMPLETE_PROFILE", "Purposes, genres and devices each need at least one answer")
	case errors.As(err, &verr):
		respond.WriteErrorDetail(w, http.StatusBadRequest, "VALIDATION_FAILED", "Profile failed validation", verr.Error())
	case errors.As(err, &gerr):
		respond.WriteError(w, http.StatusBadGateway, "GATEWAY_ERROR", gerr.Message)
	case errors.Is(err, context.Canceled):
		respond.WriteError(w, http.StatusConflict, "SUBMISSION_CANCELLED", "The recommendation request was cancelled")
	default:
		h.logger.Error("Recommendation submit failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", gateway.UnavailableMessage)
	}
}
