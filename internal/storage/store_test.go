package storage

import (
	"context"
	"testing"

	"github.com/parsa1021/tripguide/internal/db"
)

func testKV(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := testKV(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := s.PutJSON(ctx, "k", payload{Name: "파리", Count: 3}); err != nil {
		t.Fatalf("PutJSON: %v", err)
	}

	var got payload
	if !s.GetJSON(ctx, "k", &got) {
		t.Fatal("GetJSON should find the stored value")
	}
	if got.Name != "파리" || got.Count != 3 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestGetMissingKeyReturnsDefault(t *testing.T) {
	s := testKV(t)
	ctx := context.Background()

	var v string
	if s.GetJSON(ctx, "absent", &v) {
		t.Error("missing key should report not-ok")
	}

	if got := s.GetString(ctx, "absent", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q, want fallback", got)
	}
}

func TestGetCorruptValueReturnsDefault(t *testing.T) {
	s := testKV(t)
	ctx := context.Background()

	// Write a value that is not valid JSON for the target type.
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries(key, value) VALUES('bad', 'not-json')`); err != nil {
		t.Fatalf("seeding corrupt value: %v", err)
	}

	var v map[string]int
	if s.GetJSON(ctx, "bad", &v) {
		t.Error("corrupt value should report not-ok, not an error")
	}
	if got := s.GetString(ctx, "bad", "safe"); got != "safe" {
		t.Errorf("GetString on corrupt value = %q, want safe", got)
	}
}

func TestPutReplaces(t *testing.T) {
	s := testKV(t)
	ctx := context.Background()

	s.PutString(ctx, "theme", "light")
	s.PutString(ctx, "theme", "dark")

	if got := s.GetString(ctx, "theme", ""); got != "dark" {
		t.Errorf("latest write should win, got %q", got)
	}
}

func TestDelete(t *testing.T) {
	s := testKV(t)
	ctx := context.Background()

	s.PutString(ctx, "k", "v")
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := s.GetString(ctx, "k", "gone"); got != "gone" {
		t.Errorf("deleted key should yield default, got %q", got)
	}
}

func TestNilStoreTolerated(t *testing.T) {
	var s *Store
	ctx := context.Background()

	var v string
	if s.GetJSON(ctx, "k", &v) {
		t.Error("nil store reads should report not-ok")
	}
	if err := s.PutJSON(ctx, "k", "v"); err == nil {
		t.Error("nil store writes should error")
	}
}
