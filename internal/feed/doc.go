// Package feed persists photo results in a session-scoped SQLite database
// and exposes helpers for driving their lifecycle.
//
// The Store manages the database connection, schema initialization, the
// session lock, and the transitions between pending and completed records.
// Records capture the locators, display labels, and favorite state the feed
// renders, so projections can stay read-only.
//
// The database is transient session state rather than an archive: clearing
// the session directory discards every record. Treat this package as the
// single source of truth for feed semantics; new statuses or columns go
// through migrations/.
package feed
