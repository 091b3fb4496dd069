// Package survey drives the five-step questionnaire: step navigation, the
// single in-flight submission to the recommendation service, and the
// loading / error state shown while it runs.
package survey

import (
	"context"
	"errors"
	"sync"

	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/gateway"
	"github.com/albapepper/ziyou/internal/profile"
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while an
	// earlier submission has not finished.
	ErrSubmissionInFlight = errors.New("survey: submission already in flight")

	// ErrCannotProceed is returned when the current step's answers are
	// incomplete.
	ErrCannotProceed = errors.New("survey: current step is incomplete")

	// ErrNotLastStep is returned by Submit before the last step.
	ErrNotLastStep = errors.New("survey: not on the last step")
)

// Submitter sends a finished profile to the recommendation service.
type Submitter interface {
	Submit(ctx context.Context, p profile.Profile) ([]game.Game, error)
}

// Session is one user's pass through the survey. It is safe for concurrent
// use; the mutex is never held across the network call.
type Session struct {
	mu        sync.Mutex
	submitter Submitter
	step      int
	profile   profile.Profile
	loading   bool
	errMsg    string
	cancel    context.CancelFunc
	results   []game.Game
	done      bool
}

// New starts a survey at step 0 with the default profile.
func New(sub Submitter) *Session {
	return &Session{submitter: sub, profile: profile.New()}
}

// State is a snapshot for rendering.
type State struct {
	Step       int             `json:"step"`
	Steps      int             `json:"steps"`
	Profile    profile.Profile `json:"profile"`
	CanProceed bool            `json:"canProceed"`
	Loading    bool            `json:"loading"`
	Error      string          `json:"error,omitempty"`
	Done       bool            `json:"done"`
}

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Step:       s.step,
		Steps:      profile.Steps,
		Profile:    s.profile,
		CanProceed: s.profile.CanProceed(s.step),
		Loading:    s.loading,
		Error:      s.errMsg,
		Done:       s.done,
	}
}

// Step returns the 0-based current step.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Loading reports whether a submission is outstanding.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Error returns the last submission error message, if any.
func (s *Session) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// DismissError clears the inline error.
func (s *Session) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

// CanProceed reports whether the current step may advance.
func (s *Session) CanProceed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.CanProceed(s.step)
}

// Profile returns a copy of the answers so far.
func (s *Session) Profile() profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Edit applies fn to the profile. Edits are refused while a submission is
// outstanding, so the payload on the wire matches what the user sees.
func (s *Session) Edit(fn func(p *profile.Profile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrSubmissionInFlight
	}
	fn(&s.profile)
	return nil
}

// Fill replaces the answers wholesale, for front ends that collect the whole
// profile at once, and moves to the first step whose answers are incomplete
// (or the last step when all are complete).
func (s *Session) Fill(p profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrSubmissionInFlight
	}
	s.profile = p
	s.step = profile.Steps - 1
	for i := 0; i < profile.Steps; i++ {
		if !p.CanProceed(i) {
			s.step = i
			break
		}
	}
	return nil
}

// Back moves one step back. It is a no-op on the first step.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step > 0 && !s.loading {
		s.step--
	}
}

// Next advances one step, or submits when already on the last one.
func (s *Session) Next(ctx context.Context) error {
	s.mu.Lock()
	if !s.profile.CanProceed(s.step) {
		s.mu.Unlock()
		return ErrCannotProceed
	}
	if s.step < profile.Steps-1 {
		s.step++
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()
	_, err := s.Submit(ctx)
	return err
}

// Submit sends the profile. Only one submission runs at a time; a failure
// leaves the survey on the last step with the message in Error() so it can
// be retried. Cancel (or cancelling ctx) abandons the call without an error
// message.
func (s *Session) Submit(ctx context.Context) ([]game.Game, error) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if s.step != profile.Steps-1 {
		s.mu.Unlock()
		return nil, ErrNotLastStep
	}
	ctx, cancel := context.WithCancel(ctx)
	s.loading = true
	s.errMsg = ""
	s.cancel = cancel
	p := s.profile
	s.mu.Unlock()

	games, err := s.submitter.Submit(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	cancel()
	s.loading = false
	s.cancel = nil
	if err != nil {
		if ctx.Err() == nil || !errors.Is(err, context.Canceled) {
			s.errMsg = message(err)
		}
		return nil, err
	}
	s.results = games
	s.done = true
	return games, nil
}

// Cancel abandons an outstanding submission.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

// Results returns the games of the last successful submission, or nil.
func (s *Session) Results() []game.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// message is the inline text for a failed submission. Anything that is not
// a service or validation error (deadlines, limiter waits) reads as the
// service being unavailable.
func message(err error) string {
	var (
		gerr *gateway.GatewayError
		verr *profile.ValidationError
	)
	switch {
	case errors.As(err, &gerr) && gerr.Message != "":
		return gerr.Message
	case errors.As(err, &verr):
		return verr.Error()
	default:
		return gateway.UnavailableMessage
	}
}
