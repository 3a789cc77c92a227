package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_GetMissing(t *testing.T) {
	s, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	_, err = s.Get(context.Background(), "accounts")
	if !errors.Is(err, ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestFileStore_SetGetRemove(t *testing.T) {
	s, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	ctx := context.Background()

	if err := s.Set(ctx, "profile", []byte(`<perfil/>`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	blob, err := s.Get(ctx, "profile")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(blob) != `<perfil/>` {
		t.Errorf("unexpected blob: %q", blob)
	}

	// overwrite fully replaces the prior blob
	if err := s.Set(ctx, "profile", []byte(`{}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	blob, _ = s.Get(ctx, "profile")
	if string(blob) != `{}` {
		t.Errorf("expected overwritten blob, got %q", blob)
	}

	if err := s.Remove(ctx, "profile", "never-written"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := s.Get(ctx, "profile"); !errors.Is(err, ErrNotExist) {
		t.Errorf("expected ErrNotExist after Remove, got %v", err)
	}
}

func TestFileStore_InvalidKey(t *testing.T) {
	s, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	for _, key := range []string{"", "a/b", `a\b`, ".", ".."} {
		if err := s.Set(context.Background(), key, []byte("x")); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("key %q: expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestFileStore_WriteIsAtomic(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFileStore(dir)
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	ctx := context.Background()
	if err := s.Set(ctx, "settings", []byte("v1")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	// only the destination file remains, no temp leftovers
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "settings.dat" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "settings.dat"))
	if string(data) != "v1" {
		t.Errorf("unexpected file contents: %q", data)
	}
}

func TestFileStore_ContextCancelled(t *testing.T) {
	s, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Set(ctx, "accounts", []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFileStore_Closed(t *testing.T) {
	s, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	_ = s.Close()
	if err := s.Set(context.Background(), "accounts", []byte("x")); err == nil {
		t.Errorf("expected error on closed store")
	}
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if err := s.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	blob, err := s.Get(ctx, "k")
	if err != nil || string(blob) != "v" {
		t.Errorf("Get returned %q, %v", blob, err)
	}

	// mutating the returned slice must not affect the stored blob
	blob[0] = 'x'
	blob2, _ := s.Get(ctx, "k")
	if string(blob2) != "v" {
		t.Errorf("stored blob was mutated: %q", blob2)
	}

	if err := s.Remove(ctx, "k", "missing"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d keys", s.Len())
	}
}
