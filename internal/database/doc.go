// Package database provides SQLite-based storage for wfkit.
//
// This package implements the CatalogDB, which records:
//   - Fetch runs (topic, reported total, pages, timestamp)
//   - Repository records, upserted by owner/name across runs
//
// The history makes successive catalog fetches comparable: star counts
// and topic sets update in place while first-seen timestamps survive.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of
// other databases because:
//  1. No external dependencies - the database is a single file
//  2. CGO-free implementation allows easy cross-compilation
//  3. Sufficient performance for our use case
//  4. WAL mode provides good concurrent read performance
package database
