// Package storage is the local key/value store that stands in for browser
// local storage: string keys, string values, best-effort semantics.
//
// Components never reach for ambient global state; they receive a Store at
// construction. Memory is the in-process implementation used by tests and
// by the memory backend, Badger is the durable one.
package storage

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string-valued key/value store. Implementations are safe for
// concurrent use.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Memory is an in-memory Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	writes int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value for key or ErrNotFound.
func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.writes++
	return nil
}

// Writes returns how many Set/Delete calls the store has served.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Prefixed scopes every key of an underlying Store under a fixed prefix, so
// several browsers (sessions) can share one physical store.
type Prefixed struct {
	store  Store
	prefix string
}

// WithPrefix returns a Store whose keys are namespaced by prefix.
func WithPrefix(s Store, prefix string) *Prefixed {
	return &Prefixed{store: s, prefix: prefix}
}

func (p *Prefixed) Get(key string) (string, error) { return p.store.Get(p.prefix + key) }
func (p *Prefixed) Set(key, value string) error     { return p.store.Set(p.prefix+key, value) }
func (p *Prefixed) Delete(key string) error         { return p.store.Delete(p.prefix + key) }

// SessionPrefix is the key namespace of one browser session.
func SessionPrefix(sessionID string) string {
	return "session:" + sessionID + ":"
}
