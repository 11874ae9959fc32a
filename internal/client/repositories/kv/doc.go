// Package kv is the key-value store adapter every recipebox component reads
// and writes through.
//
// Contract
//
//   - Get returns ok=false (and a nil error) when the key is absent.
//   - Set overwrites unconditionally; Remove is idempotent.
//   - Values are opaque strings; encoding is the caller's concern (see the
//     records package).
//   - There are no transactions and no expiry. SetAll writes several keys in
//     one batch when the backend supports it.
//
// Backends
//
//   - SQLiteStore: default, a single kv table created by goose migrations.
//   - RedisStore: keys namespaced under a prefix, no TTL.
//   - MemoryStore: process-local, used by tests and "-s memory".
package kv
