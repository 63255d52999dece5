package history

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to create sqlite store: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func TestRecordAndRecent(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			first := &Calculation{
				Tool:   "cones.angle",
				Inputs: map[string]interface{}{"large_end": 30.0, "small_end": 20.0, "length": 8.66},
				Result: "30.000728",
			}
			if err := store.Record(first); err != nil {
				t.Fatalf("Record failed: %v", err)
			}
			if first.ID == 0 {
				t.Error("Record should assign an ID")
			}
			if first.CreatedAt.IsZero() {
				t.Error("Record should assign a timestamp")
			}

			second := &Calculation{Tool: "srss", Result: "5.477226"}
			if err := store.Record(second); err != nil {
				t.Fatalf("Record failed: %v", err)
			}

			recent, err := store.Recent(10)
			if err != nil {
				t.Fatalf("Recent failed: %v", err)
			}
			if len(recent) != 2 {
				t.Fatalf("Expected 2 calculations, got %d", len(recent))
			}
			if recent[0].Tool != "srss" {
				t.Errorf("Expected newest first, got %s", recent[0].Tool)
			}
			if recent[1].Inputs["length"] != 8.66 {
				t.Errorf("Inputs not round-tripped: %v", recent[1].Inputs)
			}
		})
	}
}

func TestRecentLimit(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				if err := store.Record(&Calculation{Tool: "gcd", Result: "1"}); err != nil {
					t.Fatalf("Record failed: %v", err)
				}
			}

			recent, err := store.Recent(3)
			if err != nil {
				t.Fatalf("Recent failed: %v", err)
			}
			if len(recent) != 3 {
				t.Errorf("Expected 3 calculations, got %d", len(recent))
			}
		})
	}
}

func TestGet(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			calc := &Calculation{Tool: "lcm", Result: "144"}
			if err := store.Record(calc); err != nil {
				t.Fatalf("Record failed: %v", err)
			}

			got, err := store.Get(calc.ID)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got.Tool != "lcm" || got.Result != "144" {
				t.Errorf("Get returned %+v", got)
			}

			if _, err := store.Get(9999); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
		})
	}
}
