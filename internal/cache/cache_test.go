package cache

import (
	"strings"
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New(true)
	etag := c.Set("k", []byte(`{"a":1}`), time.Minute)
	if !strings.HasPrefix(etag, `W/"`) {
		t.Errorf("etag = %q", etag)
	}
	data, got, ok := c.Get("k")
	if !ok || string(data) != `{"a":1}` || got != etag {
		t.Fatalf("Get = %s %q %v", data, got, ok)
	}
	if etag != ComputeETag([]byte(`{"a":1}`)) {
		t.Error("etag should be deterministic")
	}
}

func TestExpiryAndEvict(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(true)
	c.now = func() time.Time { return now }

	c.Set("short", []byte("x"), time.Second)
	c.Set("long", []byte("y"), time.Hour)
	now = now.Add(time.Minute)

	if _, _, ok := c.Get("short"); ok {
		t.Error("expired entry returned")
	}
	if s := c.Stats(); s.TotalKeys != 2 || s.ActiveKeys != 1 || s.ExpiredKeys != 1 {
		t.Errorf("Stats = %+v", s)
	}
	if n := c.Evict(); n != 1 {
		t.Errorf("Evict = %d", n)
	}
	if _, _, ok := c.Get("long"); !ok {
		t.Error("live entry evicted")
	}
}

func TestDisabled(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Hour)
	if etag == "" {
		t.Error("disabled cache should still compute an etag")
	}
	if _, _, ok := c.Get("k"); ok {
		t.Error("disabled cache returned a value")
	}
}

func TestJSONHelpers(t *testing.T) {
	c := New(true)
	type payload struct {
		IDs []string `json:"ids"`
	}
	if _, err := c.SetJSON("p", payload{IDs: []string{"hades"}}, time.Hour); err != nil {
		t.Fatal(err)
	}
	var got payload
	if !c.GetJSON("p", &got) || len(got.IDs) != 1 || got.IDs[0] != "hades" {
		t.Errorf("GetJSON = %+v", got)
	}
	c.Delete("p")
	if c.GetJSON("p", &got) {
		t.Error("deleted key still present")
	}
}

func TestCheckETagMatch(t *testing.T) {
	tests := []struct {
		header, etag string
		want         bool
	}{
		{"", `W/"a"`, false},
		{"*", `W/"a"`, true},
		{`W/"a"`, `W/"a"`, true},
		{`W/"b"`, `W/"a"`, false},
	}
	for _, tt := range tests {
		if got := CheckETagMatch(tt.header, tt.etag); got != tt.want {
			t.Errorf("CheckETagMatch(%q, %q) = %v", tt.header, tt.etag, got)
		}
	}
}
