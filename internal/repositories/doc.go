// Package repositories provides the persistence layer over SQLite.
//
// Each repository wraps a *sql.DB and covers one table family: profiles,
// friends, library entries, channels with membership, and messages. The
// library repository doubles as the catalog seeder's write-through store
// (catalog.LibraryStore).
//
// No transaction spans multiple repository calls; each operation is
// independent and short-lived.
package repositories
