package wishlist

import (
	"errors"
	"reflect"
	"testing"

	"github.com/albapepper/ziyou/internal/catalog"
	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/storage"
)

// failingStore accepts reads of a fixed value and rejects every write.
type failingStore struct {
	value string
	err   error
}

func (f *failingStore) Get(string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.value, nil
}
func (f *failingStore) Set(string, string) error { return errors.New("disk full") }
func (f *failingStore) Delete(string) error      { return errors.New("disk full") }

func TestLoadLenient(t *testing.T) {
	tests := []struct {
		name  string
		store storage.Store
	}{
		{"missing key", storage.NewMemory()},
		{"corrupt json", func() storage.Store {
			m := storage.NewMemory()
			m.Set(Key, `["a",`)
			return m
		}()},
		{"wrong shape", func() storage.Store {
			m := storage.NewMemory()
			m.Set(Key, `{"a":1}`)
			return m
		}()},
		{"read error", &failingStore{err: errors.New("io")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Load(tt.store, nil)
			if s.Len() != 0 {
				t.Errorf("Len() = %d, want 0", s.Len())
			}
		})
	}
}

func TestToggleIsSelfInverse(t *testing.T) {
	kv := storage.NewMemory()
	s := Load(kv, nil)
	s.Add("hades")

	before := s.List()
	if !s.Toggle("elden-ring") {
		t.Fatal("first toggle should add")
	}
	if s.Toggle("elden-ring") {
		t.Fatal("second toggle should remove")
	}
	if !reflect.DeepEqual(s.List(), before) {
		t.Errorf("List() = %v, want %v", s.List(), before)
	}

	if s.Toggle("hades") || s.IsWishlisted("hades") {
		t.Fatal("toggle of existing id should remove it")
	}
	s.Toggle("hades")
	if !s.IsWishlisted("hades") {
		t.Fatal("toggle back should restore membership")
	}
}

func TestEveryMutationPersists(t *testing.T) {
	kv := storage.NewMemory()
	s := Load(kv, nil)

	steps := []func(){
		func() { s.Toggle("a") },
		func() { s.Add("b") },
		func() { s.Add("c") },
		func() { s.Remove("a") },
		func() { s.Toggle("c") },
	}
	for i, step := range steps {
		step()
		if kv.Writes() != i+1 {
			t.Fatalf("after step %d Writes() = %d, want %d", i, kv.Writes(), i+1)
		}
		reloaded := Load(kv, nil)
		if !reflect.DeepEqual(reloaded.List(), s.List()) {
			t.Fatalf("after step %d reload = %v, in-memory = %v", i, reloaded.List(), s.List())
		}
	}

	// No-op mutations do not write.
	s.Add("b")
	s.Remove("zzz")
	if kv.Writes() != len(steps) {
		t.Errorf("no-op mutations wrote: Writes() = %d", kv.Writes())
	}
}

func TestPersistedFormatIsJSONArray(t *testing.T) {
	kv := storage.NewMemory()
	s := Load(kv, nil)
	s.Add("x")
	s.Add("y")
	raw, _ := kv.Get(Key)
	if raw != `["x","y"]` {
		t.Errorf("stored %q", raw)
	}

	s.Remove("x")
	s.Remove("y")
	raw, _ = kv.Get(Key)
	if raw != `[]` {
		t.Errorf("empty wishlist stored as %q, want []", raw)
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	s := Load(&failingStore{value: `["a"]`}, nil)
	if !s.IsWishlisted("a") {
		t.Fatal("expected a to load")
	}
	s.Toggle("b")
	if !s.IsWishlisted("b") {
		t.Error("in-memory state should survive a failed write")
	}
}

func TestGamesDropsUnknownIDs(t *testing.T) {
	c, _ := catalog.New([]game.Game{{ID: "a"}, {ID: "b"}})
	kv := storage.NewMemory()
	kv.Set(Key, `["b","removed-from-catalog","a"]`)

	got := game.IDs(Load(kv, nil).Games(c))
	if !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("Games() = %v", got)
	}
}
