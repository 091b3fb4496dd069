// Package wishlist keeps the user's set of favorited game ids, persisted as a
// JSON array in local storage.
//
// The set is read once when the Store is built and then served from memory.
// Every mutation that changes membership writes the whole set back before
// returning; there is no batching and no deferred flush.
package wishlist

import (
	"errors"
	"log/slog"

	"github.com/goccy/go-json"

	"github.com/albapepper/ziyou/internal/catalog"
	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/storage"
)

// Key is the storage key of the persisted id array.
const Key = "ziyou-wishlist"

// Store is the in-memory view of the wishlist plus its write-through backing.
// A Store is not safe for concurrent use.
type Store struct {
	kv     storage.Store
	logger *slog.Logger
	ids    []string
	index  map[string]struct{}
}

// Load reads the persisted wishlist. A missing key, an unreadable store or
// malformed JSON all yield an empty wishlist.
func Load(kv storage.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, logger: logger, index: make(map[string]struct{})}

	raw, err := kv.Get(Key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Debug("Wishlist unreadable, starting empty", "error", err)
		}
		return s
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Debug("Wishlist corrupt, starting empty", "error", err)
		return s
	}
	for _, id := range ids {
		s.insert(id)
	}
	return s
}

// Toggle adds id if absent and removes it if present. It returns the new
// membership.
func (s *Store) Toggle(id string) bool {
	if s.IsWishlisted(id) {
		s.delete(id)
		s.persist()
		return false
	}
	s.insert(id)
	s.persist()
	return true
}

// Add puts id on the wishlist.
func (s *Store) Add(id string) {
	if s.IsWishlisted(id) {
		return
	}
	s.insert(id)
	s.persist()
}

// Remove takes id off the wishlist.
func (s *Store) Remove(id string) {
	if !s.IsWishlisted(id) {
		return
	}
	s.delete(id)
	s.persist()
}

// IsWishlisted reports membership.
func (s *Store) IsWishlisted(id string) bool {
	_, ok := s.index[id]
	return ok
}

// List returns the ids in insertion order.
func (s *Store) List() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of wishlisted ids.
func (s *Store) Len() int {
	return len(s.ids)
}

// Games resolves the wishlist against the catalog, dropping ids the catalog
// no longer knows.
func (s *Store) Games(c *catalog.Catalog) []game.Game {
	return c.LookupMany(s.ids)
}

func (s *Store) insert(id string) {
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *Store) delete(id string) {
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return
		}
	}
}

// persist writes the full set. Storage is best-effort: a failed write is
// logged and the in-memory state stays authoritative.
func (s *Store) persist() {
	data, err := json.Marshal(s.List())
	if err != nil {
		s.logger.Warn("Failed to encode wishlist", "error", err)
		return
	}
	if err := s.kv.Set(Key, string(data)); err != nil {
		s.logger.Warn("Failed to persist wishlist", "error", err)
	}
}
