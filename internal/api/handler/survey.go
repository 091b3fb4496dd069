package handler

import (
	"net/http"
	"slices"

	"github.com/goccy/go-json"

	"github.com/albapepper/ziyou/internal/api/respond"
	"github.com/albapepper/ziyou/internal/profile"
)

// SurveyAnswers is a partial edit of the survey. Absent fields are left
// alone; a present list replaces the current one.
type SurveyAnswers struct {
	ExperienceLevel     *string   `json:"experienceLevel,omitempty"`
	WeeklyHours         *int      `json:"weeklyHours,omitempty"`
	Purposes            *[]string `json:"purposes,omitempty"`
	GenrePreferences    *[]string `json:"genrePreferences,omitempty"`
	Devices             *[]string `json:"devices,omitempty"`
	PlatformPreferences *[]string `json:"platformPreferences,omitempty"`
	AgePreference       *string   `json:"agePreference,omitempty"`
	FavoriteGames       *[]string `json:"favoriteGames,omitempty"`
}

func (a SurveyAnswers) apply(p *profile.Profile) {
	if a.ExperienceLevel != nil {
		p.SetExperience(*a.ExperienceLevel)
	}
	if a.WeeklyHours != nil {
		p.SetWeeklyHours(*a.WeeklyHours)
	}
	if a.Purposes != nil {
		p.Purposes = distinct(*a.Purposes)
	}
	if a.GenrePreferences != nil {
		p.GenrePreferences = distinct(*a.GenrePreferences)
	}
	if a.Devices != nil {
		p.Devices = distinct(*a.Devices)
	}
	if a.PlatformPreferences != nil {
		p.PlatformPreferences = distinct(*a.PlatformPreferences)
	}
	if a.AgePreference != nil {
		p.SetAgePreference(*a.AgePreference)
	}
	if a.FavoriteGames != nil {
		p.FavoriteGames = []string{}
		for _, name := range *a.FavoriteGames {
			p.AddFavoriteGame(name)
		}
	}
}

func distinct(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// GetSurvey returns the session's survey state.
// @Summary Survey state
// @Description Returns the current step, answers, loading flag and last error of the session's survey.
// @Tags survey
// @Produce json
// @Success 200 {object} survey.State
// @Router /survey [get]
func (h *Handler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, sessionFrom(r).Survey.State())
}

// EditSurvey applies a partial edit to the session's answers.
// @Summary Edit survey answers
// @Description Updates the fields present in the body and leaves the rest alone. Refused while a submission is in flight.
// @Tags survey
// @Accept json
// @Produce json
// @Param answers body SurveyAnswers true "Answers to change"
// @Success 200 {object} survey.State
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /survey [patch]
func (h *Handler) EditSurvey(w http.ResponseWriter, r *http.Request) {
	var a SurveyAnswers
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxProfileBytes)).Decode(&a); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be survey answers", err.Error())
		return
	}
	s := sessionFrom(r)
	if err := s.Survey.Edit(a.apply); err != nil {
		h.writeSubmitError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, s.Survey.State())
}

// NextSurveyStep advances the survey, submitting it from the last step.
// @Summary Next survey step
// @Description Moves to the next step when the current one is answered. On the last step the profile is submitted and the returned games become the session's results.
// @Tags survey
// @Produce json
// @Success 200 {object} survey.State
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /survey/next [post]
func (h *Handler) NextSurveyStep(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if s.Survey.Step() == profile.Steps-1 {
		games, err := s.Survey.Submit(r.Context())
		if err != nil {
			h.writeSubmitError(w, err)
			return
		}
		h.storeRecommendations(s, games)
	} else if err := s.Survey.Next(r.Context()); err != nil {
		h.writeSubmitError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, s.Survey.State())
}

// PreviousSurveyStep moves the survey one step back.
// @Summary Previous survey step
// @Description Moves one step back. Does nothing on the first step or while a submission is in flight.
// @Tags survey
// @Produce json
// @Success 200 {object} survey.State
// @Router /survey/back [post]
func (h *Handler) PreviousSurveyStep(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Survey.Back()
	respond.WriteJSONObject(w, http.StatusOK, s.Survey.State())
}

// CancelSurvey abandons the session's outstanding submission, if any.
// @Summary Cancel submission
// @Tags survey
// @Produce json
// @Success 200 {object} survey.State
// @Router /survey/cancel [post]
func (h *Handler) CancelSurvey(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Survey.Cancel()
	respond.WriteJSONObject(w, http.StatusOK, s.Survey.State())
}

// DismissSurveyError clears the survey's inline error.
// @Summary Dismiss survey error
// @Tags survey
// @Produce json
// @Success 200 {object} survey.State
// @Router /survey/error [delete]
func (h *Handler) DismissSurveyError(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Survey.DismissError()
	respond.WriteJSONObject(w, http.StatusOK, s.Survey.State())
}
