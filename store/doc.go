// Package store caches analysis reports in a SQLite database.
//
// A report is keyed by sha256(sequence ‖ engine fingerprint), so a cached
// entry is reused only by an engine with the same mode, stride, tracks,
// attribute table and thresholds. Reports are stored as JSON blobs next to
// a uuid run id, the Ω value and its level, which keeps List cheap.
//
// The database runs in WAL mode; the pure-Go modernc.org/sqlite driver keeps
// the binary cgo-free. Access goes through a single connection, so concurrent
// callers are serialized. Use ":memory:" for a throwaway cache.
package store
