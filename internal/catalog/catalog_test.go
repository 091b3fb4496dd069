package catalog

import (
	"strings"
	"testing"

	"github.com/albapepper/ziyou/internal/game"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, g := range c.All() {
		if !g.Difficulty.Valid() {
			t.Errorf("game %q has invalid difficulty %q", g.ID, g.Difficulty)
		}
	}
}

func TestLookup(t *testing.T) {
	c, err := New([]game.Game{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}})
	if err != nil {
		t.Fatal(err)
	}

	g, ok := c.Lookup("b")
	if !ok || g.Name != "B" {
		t.Errorf("Lookup(b) = %+v, %v", g, ok)
	}
	if _, ok := c.Lookup("missing"); ok {
		t.Error("Lookup(missing) should report false")
	}
}

func TestLookupManyDropsMisses(t *testing.T) {
	c, _ := New([]game.Game{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	got := game.IDs(c.LookupMany([]string{"c", "gone", "a", "", "b"}))
	want := []string{"c", "a", "b"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("LookupMany = %v, want %v", got, want)
	}
	if got := c.LookupMany(nil); len(got) != 0 {
		t.Errorf("LookupMany(nil) = %v, want empty", got)
	}
}

func TestReadRejectsDuplicates(t *testing.T) {
	_, err := Read(strings.NewReader(`[{"id":"x"},{"id":"x"}]`))
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestReadRejectsMalformed(t *testing.T) {
	if _, err := Read(strings.NewReader(`{not json`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c, _ := New([]game.Game{{ID: "a", Name: "A"}})
	all := c.All()
	all[0].Name = "mutated"
	if g, _ := c.Lookup("a"); g.Name != "A" {
		t.Error("All() exposed internal storage")
	}
}
