package kvstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	return map[string]Store{
		"memory": NewMemory(),
		"file":   fileStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get("cart"); err != nil || ok {
				t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
			}

			want := []byte(`[{"id":1,"quantity":2}]`)
			if err := s.Set("cart", want); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			got, ok, err := s.Get("cart")
			if err != nil || !ok {
				t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("got %s, want %s", got, want)
			}

			// Set replaces wholesale.
			if err := s.Set("cart", []byte(`[]`)); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, _, _ = s.Get("cart")
			if !bytes.Equal(got, []byte(`[]`)) {
				t.Fatalf("second Set not wholesale: %s", got)
			}

			if err := s.Delete("cart"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, ok, _ := s.Get("cart"); ok {
				t.Fatal("key still present after Delete")
			}
			if err := s.Delete("cart"); err != nil {
				t.Fatalf("Delete of absent key should be nil, got %v", err)
			}
		})
	}
}

func TestStoreRejectsBadKeys(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "../escape", "a b", "x/y"} {
				if err := s.Set(key, []byte("v")); err != ErrBadKey {
					t.Fatalf("Set(%q): expected ErrBadKey, got %v", key, err)
				}
				if _, _, err := s.Get(key); err != ErrBadKey {
					t.Fatalf("Get(%q): expected ErrBadKey, got %v", key, err)
				}
			}
		})
	}
}

func TestFileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if err := s.Set("orders", []byte(`[{"orderId":"ORD-1"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened, err := NewFile(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, ok, err := reopened.Get("orders")
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, []byte(`[{"orderId":"ORD-1"}]`)) {
		t.Fatalf("unexpected value after reopen: %s", got)
	}
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		if err := s.Set("cart", []byte(`[]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one data file, got %d", len(entries))
	}
}
