// Package theme persists the active UI theme.
package theme

import (
	"log/slog"

	"github.com/albapepper/ziyou/internal/storage"
)

// Key is the storage key of the theme name.
const Key = "ziyou-theme"

// Name is one of the two themes.
type Name string

const (
	Cyber    Name = "cyber"
	Dopamine Name = "dopamine"

	Default = Cyber
)

// Valid reports whether n is a known theme.
func (n Name) Valid() bool {
	return n == Cyber || n == Dopamine
}

// Store is a read-through cache over the persisted theme.
type Store struct {
	kv      storage.Store
	logger  *slog.Logger
	current Name
}

// Load reads the persisted theme, falling back to Default when the key is
// missing, unreadable or holds an unknown value.
func Load(kv storage.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, logger: logger, current: Default}
	if v, err := kv.Get(Key); err == nil && Name(v).Valid() {
		s.current = Name(v)
	}
	return s
}

// Current returns the active theme.
func (s *Store) Current() Name {
	return s.current
}

// Set switches to n and persists it. Unknown names are ignored.
func (s *Store) Set(n Name) {
	if !n.Valid() {
		return
	}
	s.current = n
	if err := s.kv.Set(Key, string(n)); err != nil {
		s.logger.Warn("Failed to persist theme", "error", err)
	}
}

// Toggle flips between the two themes and returns the new one.
func (s *Store) Toggle() Name {
	if s.current == Cyber {
		s.Set(Dopamine)
	} else {
		s.Set(Cyber)
	}
	return s.current
}
