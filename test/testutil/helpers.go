// Package testutil provides shared helpers for tagihan tests.
package testutil

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/bramasto/tagihan/internal/events"
	"github.com/bramasto/tagihan/internal/store"
)

// NewTestLogger creates a silent logger for tests.
func NewTestLogger() *events.Logger {
	return events.NewTestLogger(events.ErrorLevel, "json", io.Discard)
}

// TempStore creates a vault store backed by a file in a test temp dir.
func TempStore(t *testing.T) *store.JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tagihan_data.json")
	return store.NewJSONStore(path, NewTestLogger())
}

// TestKey returns a deterministic 32-byte key for cipher tests.
func TestKey(b byte) []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = b
	}
	return key
}
