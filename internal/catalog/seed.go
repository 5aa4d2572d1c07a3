package catalog

import (
	"context"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gameshelf/internal/models"
)

const (
	// DefaultSeedCount is how many titles a fresh library is seeded with.
	DefaultSeedCount = 10

	// seedPoolLimit is the pool size requested from the provider.
	seedPoolLimit = 200

	hashMultiplier = 131
)

// LibraryStore is the persistence collaborator the seeder writes through.
//
// Implemented by repositories.LibraryRepository.
type LibraryStore interface {
	Count(owner string) (int, error)
	Insert(owner, gameID, gameName string) error
}

// PoolSource supplies the live seeding pool. Implemented by [Gateway].
type PoolSource interface {
	TopPool(ctx context.Context, limit int) []models.PoolEntry
}

// Seeder populates a new user's library with a deterministic selection from
// the seed pool.
type Seeder struct {
	pool   PoolSource
	store  LibraryStore
	logger *log.Logger
}

// NewSeeder creates a Seeder reading pools from pool and writing through store.
func NewSeeder(pool PoolSource, store LibraryStore, logger *log.Logger) *Seeder {
	return &Seeder{pool: pool, store: store, logger: logger}
}

// UsernameHash computes the stable rolling hash of a username: for each
// codepoint, h = h*131 + codepoint, accumulated in wrapping unsigned 32-bit
// arithmetic starting from 0.
//
// The multiplier, modulus and accumulation order are load-bearing: they make
// seed selection reproducible across processes and platforms.
func UsernameHash(username string) uint32 {
	var h uint32
	for _, r := range username {
		h = h*hashMultiplier + uint32(r)
	}
	return h
}

// Seed populates username's library with want titles, selected by walking the
// seed pool circularly from the hash-derived offset.
//
// No-op when the user already has any library rows. Individual insert
// failures are logged and skipped: seeding is best-effort and a partially
// seeded library is acceptable.
func (s *Seeder) Seed(ctx context.Context, username string, want int) {
	if want <= 0 {
		want = DefaultSeedCount
	}

	count, err := s.store.Count(username)
	if err != nil {
		s.logger.Warn("library count failed, skipping seed", "username", username, "err", err)
		return
	}
	if count > 0 {
		return
	}

	pool := s.pool.TopPool(ctx, seedPoolLimit)
	if len(pool) == 0 {
		pool = PlaceholderPool()
	}

	start := int(UsernameHash(username) % uint32(len(pool)))
	n := want
	if len(pool) < n {
		n = len(pool)
	}

	for i := 0; i < n; i++ {
		entry := pool[(start+i)%len(pool)]
		if err := s.store.Insert(username, strconv.FormatInt(entry.ID, 10), entry.Name); err != nil {
			s.logger.Warn("seed insert failed", "username", username, "game", entry.ID, "err", err)
		}
	}
}

// PlaceholderPool returns the fixed seeding pool used when the provider is
// unavailable.
func PlaceholderPool() []models.PoolEntry {
	return []models.PoolEntry{
		{ID: 1001, Name: "Neon Rift"},
		{ID: 1002, Name: "Arcane Runner"},
		{ID: 1003, Name: "Starforge"},
		{ID: 1004, Name: "Shadow Vale"},
		{ID: 1005, Name: "Eclipse Odyssey"},
		{ID: 1006, Name: "Crimson Tactics"},
		{ID: 1007, Name: "Mythic Skies"},
		{ID: 1008, Name: "Quantum Trails"},
		{ID: 1009, Name: "Ironclad Frontier"},
		{ID: 1010, Name: "Solaris Drift"},
		{ID: 1011, Name: "Emberwatch"},
		{ID: 1012, Name: "Frostborn"},
		{ID: 1013, Name: "Warden's Call"},
		{ID: 1014, Name: "Aegis Protocol"},
		{ID: 1015, Name: "Nova Siege"},
		{ID: 1016, Name: "Runebound"},
		{ID: 1017, Name: "Phantom Circuit"},
		{ID: 1018, Name: "Tempest Vale"},
		{ID: 1019, Name: "Golemheart"},
		{ID: 1020, Name: "Starlit Expanse"},
		{ID: 1021, Name: "Echoes of Halcyon"},
		{ID: 1022, Name: "Shattered Spire"},
		{ID: 1023, Name: "Citadel of Glass"},
		{ID: 1024, Name: "Valkyrie's Path"},
		{ID: 1025, Name: "Cobalt Horizon"},
		{ID: 1026, Name: "Axis Breaker"},
		{ID: 1027, Name: "Mirage Strider"},
		{ID: 1028, Name: "Crimson Respite"},
		{ID: 1029, Name: "Basilisk Run"},
		{ID: 1030, Name: "Zephyr Edge"},
	}
}
