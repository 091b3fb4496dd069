// Package session holds the per-browser state of the browse server. Each
// browser is identified by a random id carried in a cookie; its wishlist and
// theme live under that id's namespace in the shared storage, so they outlive
// the in-memory Session.
package session

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/albapepper/ziyou/internal/filter"
	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/metrics"
	"github.com/albapepper/ziyou/internal/sampler"
	"github.com/albapepper/ziyou/internal/storage"
	"github.com/albapepper/ziyou/internal/survey"
	"github.com/albapepper/ziyou/internal/theme"
	"github.com/albapepper/ziyou/internal/wishlist"
)

// CookieName is the cookie carrying the session id.
const CookieName = "ziyou_session"

// Session is one browser's state. Callers hold Lock while touching Wishlist,
// Theme or the results view; Survey has its own lock and must not be used
// under this one across a submission.
type Session struct {
	ID string

	mu       sync.Mutex
	Wishlist *wishlist.Store
	Theme    *theme.Store
	Survey   *survey.Session

	view      *sampler.View
	viewCount int
	viewKey   string
	selection filter.Selection

	lastSeen time.Time
}

// Lock serializes requests from one browser.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases Lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// Selection is the filter selection the results view was last drawn with.
func (s *Session) Selection() filter.Selection {
	return s.selection
}

// Results draws the results view for filtered, which was produced from sel.
// The sample is kept until the selection, the collection or count changes,
// or Reshuffle is called. It returns the view.
func (s *Session) Results(sel filter.Selection, filtered []game.Game, count int) *sampler.View {
	key := sel.Query().Encode() + "|" + joinIDs(filtered)
	if s.view == nil || s.viewCount != count {
		s.view = sampler.NewView(count, nil)
		s.viewCount = count
		s.viewKey = ""
	}
	if key != s.viewKey {
		s.view.SetSource(filtered)
		s.viewKey = key
		s.selection = sel
	}
	return s.view
}

// ViewCount is the sample size of the current results view, or 0 before the
// first draw.
func (s *Session) ViewCount() int {
	return s.viewCount
}

// Reshuffle re-rolls the current results view. It returns nil when no view
// has been drawn yet.
func (s *Session) Reshuffle() *sampler.View {
	if s.view == nil {
		return nil
	}
	s.view.Reshuffle()
	metrics.Reshuffles.Inc()
	return s.view
}

// Manager creates, finds and expires sessions.
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	store     storage.Store
	submitter survey.Submitter
	logger    *slog.Logger
	now       func() time.Time
}

// NewManager creates a session manager over store. submitter is handed to
// each session's survey.
func NewManager(store storage.Store, submitter survey.Submitter, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		sessions:  make(map[string]*Session),
		store:     store,
		submitter: submitter,
		logger:    logger,
		now:       time.Now,
	}
}

// Acquire returns the session for id, loading its persisted state if it is
// not in memory. An empty or malformed id gets a fresh session; created
// reports that case so the caller can set the cookie.
func (m *Manager) Acquire(id string) (s *Session, created bool) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
		created = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.lastSeen = m.now()
		return s, created
	}

	kv := storage.WithPrefix(m.store, storage.SessionPrefix(id))
	logger := m.logger.With("session", id)
	s = &Session{
		ID:       id,
		Wishlist: wishlist.Load(kv, logger),
		Theme:    theme.Load(kv, logger),
		Survey:   survey.New(m.submitter),
		lastSeen: m.now(),
	}
	m.sessions[id] = s
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	return s, created
}

// Len is the number of sessions held in memory.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops in-memory sessions idle for longer than idle. Persisted state
// is untouched and reloads on the next request. Sessions with a submission
// in flight are kept.
func (m *Manager) Sweep(idle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-idle)
	n := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) && !s.Survey.Loading() {
			delete(m.sessions, id)
			n++
		}
	}
	if n > 0 {
		metrics.ActiveSessions.Set(float64(len(m.sessions)))
		m.logger.Debug("Swept idle sessions", "removed", n, "remaining", len(m.sessions))
	}
	return n
}

func joinIDs(games []game.Game) string {
	return strings.Join(game.IDs(games), ",")
}
