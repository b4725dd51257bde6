// Package storetest provides a conformance suite run against every
// storage.Store implementation.
package storetest

import (
	"errors"
	"testing"

	"github.com/dchernov/campuskit/storage"
)

// Run exercises the common Store contract.
func Run(t *testing.T, store storage.Store) {
	t.Helper()

	t.Run("SetAndGet", func(t *testing.T) {
		if err := store.Set("k1", "v1"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := store.Get("k1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "v1" {
			t.Fatalf("got %q, want %q", got, "v1")
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get("no-such-key")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		store.Set("k2", "first")
		store.Set("k2", "second")
		got, err := store.Get("k2")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "second" {
			t.Fatalf("got %q, want %q", got, "second")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store.Set("k3", "v3")
		if err := store.Delete("k3"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		_, err := store.Get("k3")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound after delete", err)
		}
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		// Should not error.
		if err := store.Delete("never-existed"); err != nil {
			t.Fatalf("Delete of missing key failed: %v", err)
		}
	})
}
