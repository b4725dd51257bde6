package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/dchernov/campuskit/storage/storetest"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := NewStoreFromFile(path, nil)
	if err != nil {
		t.Fatalf("could not open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestBBoltStore(t *testing.T) {
	s, _ := newTestStore(t)
	storetest.Run(t, s)
}

func TestSurvivesReopen(t *testing.T) {
	s, path := newTestStore(t)
	if err := s.Set("access_token", "AT1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewStoreFromFile(path, nil)
	if err != nil {
		t.Fatalf("could not reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("access_token")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got != "AT1" {
		t.Fatalf("got %q, want %q", got, "AT1")
	}
}
