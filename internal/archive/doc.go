// Package archive provides SQLite-based storage for analysis inputs.
//
// This package implements the Archive, which stores:
//   - Analysis records keyed by case identifier
//   - Denormalized disease names and confidence for fast history listings
//
// Generated report documents are deliberately not stored: they can always
// be reproduced from the archived input, so the archive stays small and
// never holds stale renditions.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package archive
