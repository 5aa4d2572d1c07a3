package catalog

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/desertthunder/gameshelf/internal/models"
	"github.com/desertthunder/gameshelf/internal/shared"
)

// fakeLibrary records seed inserts and simulates store behavior.
type fakeLibrary struct {
	count     int
	countErr  error
	insertErr error
	inserted  []models.LibraryEntry
}

func (f *fakeLibrary) Count(owner string) (int, error) {
	return f.count, f.countErr
}

func (f *fakeLibrary) Insert(owner, gameID, gameName string) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, models.LibraryEntry{ID: gameID, Name: gameName})
	return nil
}

// fakePool returns a canned pool.
type fakePool struct {
	entries []models.PoolEntry
}

func (f *fakePool) TopPool(ctx context.Context, limit int) []models.PoolEntry {
	return f.entries
}

func newTestSeeder(pool PoolSource, store LibraryStore) *Seeder {
	return NewSeeder(pool, store, shared.NewLogger(io.Discard))
}

func TestUsernameHash(t *testing.T) {
	t.Run("Known Value", func(t *testing.T) {
		if got := UsernameHash("alice"); got != 3041297364 {
			t.Errorf("UsernameHash(alice) = %d, want 3041297364", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first := UsernameHash("some_user_42")
		for i := 0; i < 5; i++ {
			if got := UsernameHash("some_user_42"); got != first {
				t.Fatalf("hash changed between calls: %d != %d", got, first)
			}
		}
	})

	t.Run("Empty Username", func(t *testing.T) {
		if got := UsernameHash(""); got != 0 {
			t.Errorf("UsernameHash(\"\") = %d, want 0", got)
		}
	})

	t.Run("Distinct Usernames Diverge", func(t *testing.T) {
		if UsernameHash("alice") == UsernameHash("bob") {
			t.Error("expected different hashes for alice and bob")
		}
	})
}

func TestSeeder(t *testing.T) {
	ctx := context.Background()

	t.Run("Circular Selection From Hash Offset", func(t *testing.T) {
		// hash(alice) mod 30 == 24, so selection wraps from index 24.
		store := &fakeLibrary{}
		seeder := newTestSeeder(&fakePool{}, store)

		seeder.Seed(ctx, "alice", 10)

		want := []string{"1025", "1026", "1027", "1028", "1029", "1030", "1001", "1002", "1003", "1004"}
		if len(store.inserted) != len(want) {
			t.Fatalf("expected %d inserts, got %d", len(want), len(store.inserted))
		}
		for i, entry := range store.inserted {
			if entry.ID != want[i] {
				t.Errorf("insert %d: id %s, want %s", i, entry.ID, want[i])
			}
		}
	})

	t.Run("Idempotent When Rows Exist", func(t *testing.T) {
		store := &fakeLibrary{count: 3}
		seeder := newTestSeeder(&fakePool{}, store)

		seeder.Seed(ctx, "alice", 10)

		if len(store.inserted) != 0 {
			t.Errorf("expected no inserts for already-seeded user, got %d", len(store.inserted))
		}
	})

	t.Run("Count Failure Skips Seeding", func(t *testing.T) {
		store := &fakeLibrary{countErr: fmt.Errorf("database locked")}
		seeder := newTestSeeder(&fakePool{}, store)

		seeder.Seed(ctx, "alice", 10)

		if len(store.inserted) != 0 {
			t.Errorf("expected no inserts when count fails, got %d", len(store.inserted))
		}
	})

	t.Run("Live Pool Preferred", func(t *testing.T) {
		pool := &fakePool{entries: []models.PoolEntry{
			{ID: 7, Name: "Seven"},
			{ID: 8, Name: "Eight"},
			{ID: 9, Name: "Nine"},
		}}
		store := &fakeLibrary{}
		seeder := newTestSeeder(pool, store)

		seeder.Seed(ctx, "alice", 10)

		// want exceeds pool size, so every pool entry is used exactly once.
		if len(store.inserted) != 3 {
			t.Fatalf("expected 3 inserts, got %d", len(store.inserted))
		}
		for _, entry := range store.inserted {
			if entry.ID != "7" && entry.ID != "8" && entry.ID != "9" {
				t.Errorf("unexpected seeded id %s", entry.ID)
			}
		}
	})

	t.Run("Placeholder Fallback On Empty Pool", func(t *testing.T) {
		store := &fakeLibrary{}
		seeder := newTestSeeder(&fakePool{}, store)

		seeder.Seed(ctx, "bob", 5)

		if len(store.inserted) != 5 {
			t.Fatalf("expected 5 inserts, got %d", len(store.inserted))
		}
		for _, entry := range store.inserted {
			if entry.ID < "1001" || entry.ID > "1030" {
				t.Errorf("seeded id %s outside placeholder pool range", entry.ID)
			}
		}
	})

	t.Run("Insert Failures Swallowed", func(t *testing.T) {
		store := &fakeLibrary{insertErr: fmt.Errorf("disk full")}
		seeder := newTestSeeder(&fakePool{}, store)

		// Must not panic and must not surface the error.
		seeder.Seed(ctx, "alice", 10)
	})

	t.Run("Repeat Seed Matches Single Seed", func(t *testing.T) {
		first := &fakeLibrary{}
		newTestSeeder(&fakePool{}, first).Seed(ctx, "carol", 10)

		second := &fakeLibrary{}
		seeder := newTestSeeder(&fakePool{}, second)
		seeder.Seed(ctx, "carol", 10)
		second.count = len(second.inserted)
		seeder.Seed(ctx, "carol", 10)

		if len(first.inserted) != len(second.inserted) {
			t.Fatalf("double seed produced %d rows, single produced %d", len(second.inserted), len(first.inserted))
		}
		for i := range first.inserted {
			if first.inserted[i] != second.inserted[i] {
				t.Errorf("row %d differs: %+v vs %+v", i, first.inserted[i], second.inserted[i])
			}
		}
	})
}

func TestPlaceholderPool(t *testing.T) {
	pool := PlaceholderPool()

	if len(pool) != 30 {
		t.Fatalf("expected 30 placeholder entries, got %d", len(pool))
	}

	seen := map[int64]bool{}
	for _, entry := range pool {
		if entry.ID < 1001 || entry.ID > 1030 {
			t.Errorf("placeholder id %d outside expected range", entry.ID)
		}
		if entry.Name == "" {
			t.Errorf("placeholder %d has empty name", entry.ID)
		}
		if seen[entry.ID] {
			t.Errorf("duplicate placeholder id %d", entry.ID)
		}
		seen[entry.ID] = true
	}
}
