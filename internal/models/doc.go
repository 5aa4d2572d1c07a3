// Package models defines the domain entities for the gameshelf backend.
//
// The package contains two categories of types:
//
// 1. Catalog DTOs: Normalized views of external catalog provider data
//   - [CatalogItem] : A store listing with synthetic price and installed flag
//   - [GameDetail] : Detail view with screenshots and an optional video embed
//   - [PoolEntry] : Minimal id/name pair used for deterministic library seeding
//
// 2. Persistent Entities: Rows owned by the local SQLite store
//   - [Profile] : User account with display metadata
//   - [LibraryEntry] : A game owned by a user
//   - [Channel] and [Message] : Chat channels with membership and history
//
// Catalog DTOs are produced fresh per request and never persisted by this layer.
package models
