// Package store persists the vault as a single JSON file and keeps old
// on-disk shapes loadable.
//
// Loading runs three stages: Migrate resolves the raw record into the
// current shape (wrapping legacy flat ledgers into a pending profile),
// Normalize repairs partially populated plaintext fields, and the normalized
// result is written back. Encrypted payload bytes pass through both stages
// untouched. Saving always rewrites the whole file atomically.
package store
