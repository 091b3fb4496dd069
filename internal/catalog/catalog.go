// Package catalog provides read-only lookup over the static game catalog.
//
// The catalog ships embedded in the binary (data/games.json) and can be
// replaced at startup with a file of the same shape. Once loaded it is never
// mutated, so a *Catalog is safe for concurrent readers.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/albapepper/ziyou/internal/game"
)

//go:embed data/games.json
var embedded []byte

// Catalog is an immutable, id-indexed collection of game records.
type Catalog struct {
	games []game.Game
	byID  map[string]int
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Read(bytes.NewReader(embedded))
}

// Open loads a catalog from a JSON file. An empty path means the embedded
// catalog.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a JSON array of game records. Duplicate identifiers are
// rejected because the id is the join key for every other component.
func Read(r io.Reader) (*Catalog, error) {
	var games []game.Game
	if err := json.NewDecoder(r).Decode(&games); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(games)
}

// New builds a catalog from records already in memory.
func New(games []game.Game) (*Catalog, error) {
	c := &Catalog{
		games: make([]game.Game, len(games)),
		byID:  make(map[string]int, len(games)),
	}
	copy(c.games, games)
	for i, g := range c.games {
		if g.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := c.byID[g.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", g.ID)
		}
		c.byID[g.ID] = i
	}
	return c, nil
}

// Lookup returns the record with the given id.
func (c *Catalog) Lookup(id string) (game.Game, bool) {
	i, ok := c.byID[id]
	if !ok {
		return game.Game{}, false
	}
	return c.games[i], true
}

// LookupMany resolves ids in order and silently drops ids with no record.
// Persisted id lists may outlive the catalog entries they point at.
func (c *Catalog) LookupMany(ids []string) []game.Game {
	out := make([]game.Game, 0, len(ids))
	for _, id := range ids {
		if g, ok := c.Lookup(id); ok {
			out = append(out, g)
		}
	}
	return out
}

// All returns every record in catalog order. The slice is a copy.
func (c *Catalog) All() []game.Game {
	out := make([]game.Game, len(c.games))
	copy(out, c.games)
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.games)
}
