package survey

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/gateway"
	"github.com/albapepper/ziyou/internal/profile"
)

// blockingSubmitter holds every call until released or cancelled.
type blockingSubmitter struct {
	started chan struct{}
	release chan struct{}
	games   []game.Game
}

func newBlockingSubmitter() *blockingSubmitter {
	return &blockingSubmitter{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (b *blockingSubmitter) Submit(ctx context.Context, p profile.Profile) ([]game.Game, error) {
	b.started <- struct{}{}
	select {
	case <-b.release:
		return b.games, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type stubSubmitter struct {
	games []game.Game
	err   error
	calls int
}

func (s *stubSubmitter) Submit(ctx context.Context, p profile.Profile) ([]game.Game, error) {
	s.calls++
	return s.games, s.err
}

func walkToLastStep(t *testing.T, s *Session) {
	t.Helper()
	ctx := context.Background()
	if err := s.Next(ctx); err != nil { // experience
		t.Fatal(err)
	}
	if err := s.Next(ctx); !errors.Is(err, ErrCannotProceed) {
		t.Fatalf("step 1 with no purposes: err = %v", err)
	}
	s.Edit(func(p *profile.Profile) { p.TogglePurpose("relaxing") })
	if err := s.Next(ctx); err != nil {
		t.Fatal(err)
	}
	s.Edit(func(p *profile.Profile) { p.ToggleGenre("puzzle") })
	if err := s.Next(ctx); err != nil {
		t.Fatal(err)
	}
	s.Edit(func(p *profile.Profile) { p.ToggleDevice("phone") })
	if err := s.Next(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Step() != profile.Steps-1 {
		t.Fatalf("step = %d", s.Step())
	}
}

func TestEndToEndServerErrorKeepsLastStep(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := New(gateway.NewClient(gateway.Options{BaseURL: srv.URL}, nil))
	if s.Profile().CanProceed(1) {
		t.Fatal("empty purposes should fail step 1")
	}
	walkToLastStep(t, s)

	err := s.Next(context.Background())
	if err == nil {
		t.Fatal("expected gateway error")
	}
	st := s.State()
	if !strings.Contains(st.Error, "500") {
		t.Errorf("error message %q should contain 500", st.Error)
	}
	if st.Step != profile.Steps-1 || st.Loading || st.Done {
		t.Errorf("state after failure = %+v", st)
	}

	s.DismissError()
	if s.Error() != "" {
		t.Error("DismissError did not clear")
	}
}

func TestSubmitSuccessStoresResults(t *testing.T) {
	sub := &stubSubmitter{games: []game.Game{{ID: "hades"}}}
	s := New(sub)
	walkToLastStep(t, s)

	games, err := s.Submit(context.Background())
	if err != nil || len(games) != 1 {
		t.Fatalf("Submit() = %v, %v", games, err)
	}
	if !s.State().Done || len(s.Results()) != 1 {
		t.Error("results not recorded")
	}
}

func TestResubmitAfterFailure(t *testing.T) {
	sub := &stubSubmitter{err: &gateway.GatewayError{Status: 502, Message: "down"}}
	s := New(sub)
	walkToLastStep(t, s)

	s.Submit(context.Background())
	if s.Error() != "down" {
		t.Fatalf("Error() = %q", s.Error())
	}
	sub.err = nil
	sub.games = []game.Game{{ID: "x"}}
	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("resubmit error = %v", err)
	}
	if s.Error() != "" || sub.calls != 2 {
		t.Errorf("error %q calls %d", s.Error(), sub.calls)
	}
}

func TestSubmitBeforeLastStep(t *testing.T) {
	s := New(&stubSubmitter{})
	if _, err := s.Submit(context.Background()); !errors.Is(err, ErrNotLastStep) {
		t.Errorf("err = %v", err)
	}
}

func TestSingleInFlightAndCancel(t *testing.T) {
	sub := newBlockingSubmitter()
	s := New(sub)
	walkToLastStep(t, s)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background())
		done <- err
	}()
	<-sub.started

	if !s.Loading() {
		t.Fatal("Loading() should be true while in flight")
	}
	if _, err := s.Submit(context.Background()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("second Submit err = %v", err)
	}
	if err := s.Edit(func(p *profile.Profile) { p.TogglePurpose("story") }); !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("Edit while loading err = %v", err)
	}
	if len(s.Profile().Purposes) != 1 {
		t.Error("edits must be ignored while loading")
	}
	s.Back()
	if s.Step() != profile.Steps-1 {
		t.Error("Back must be ignored while loading")
	}

	s.Cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cancel did not end the submission")
	}
	if s.Loading() || s.Error() != "" {
		t.Errorf("after cancel loading=%v error=%q", s.Loading(), s.Error())
	}
}

func TestFill(t *testing.T) {
	s := New(&stubSubmitter{games: []game.Game{}})
	p := profile.New()
	p.TogglePurpose("story")
	if err := s.Fill(p); err != nil {
		t.Fatal(err)
	}
	if s.Step() != 2 {
		t.Errorf("incomplete profile: step = %d, want 2 (genres)", s.Step())
	}
	if _, err := s.Submit(context.Background()); !errors.Is(err, ErrNotLastStep) {
		t.Errorf("Submit on incomplete profile err = %v", err)
	}

	p.ToggleGenre("rpg")
	p.ToggleDevice("pc")
	s.Fill(p)
	if s.Step() != profile.Steps-1 {
		t.Errorf("complete profile: step = %d", s.Step())
	}
	if _, err := s.Submit(context.Background()); err != nil {
		t.Errorf("Submit err = %v", err)
	}
}

func TestBack(t *testing.T) {
	s := New(&stubSubmitter{})
	s.Back()
	if s.Step() != 0 {
		t.Fatal("Back on step 0 moved")
	}
	s.Next(context.Background())
	s.Back()
	if s.Step() != 0 {
		t.Errorf("step = %d", s.Step())
	}
}

type errSubmitter struct{ err error }

func (e errSubmitter) Submit(ctx context.Context, p profile.Profile) ([]game.Game, error) {
	return nil, e.err
}

func TestSubmitErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"service", &gateway.GatewayError{Status: 503, Message: "请求失败 (503)"}, "请求失败 (503)"},
		{"deadline", context.DeadlineExceeded, gateway.UnavailableMessage},
		{"wrapped deadline", fmt.Errorf("rate limit wait: %w", context.DeadlineExceeded), gateway.UnavailableMessage},
		{"validation", &profile.ValidationError{Fields: []profile.FieldError{{Field: "weeklyHours", Rule: "max", Param: "40"}}}, "invalid profile: weeklyHours: max=40"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(errSubmitter{err: tt.err})
			walkToLastStep(t, s)
			s.Submit(context.Background())
			if got := s.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
