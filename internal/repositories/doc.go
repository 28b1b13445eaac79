// Package repositories implements SQLite persistence for the fetch audit log.
//
// The store is optional and append-only. It never holds show data: the tour endpoint always reads
// the sheet fresh, and the log only records when each fetch happened and how it went.
//
// Key Implementations:
//   - [FetchLogRepository] : Fetch outcomes with newest-first listing
//   - [FetchLogRecorder] : Adapter satisfying services.FetchRecorder
//
// Sequence numbers provide stable, human-readable ordering (e.g., fetch #42) independent of UUIDs and timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
