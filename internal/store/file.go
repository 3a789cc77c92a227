package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kjk/common/atomicfile"
)

// FileStore keeps one file per key inside a data directory. Writes go
// through a temp file and a rename, so a failed Set leaves the previous
// blob untouched.
type FileStore struct {
	dir string

	mu     sync.Mutex
	closed bool
}

// OpenFileStore opens (creating if needed) the data directory and returns
// a store over it.
func OpenFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("open store: empty data directory")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Close marks the store closed. Subsequent operations fail.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Dir returns the data directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Get returns the blob stored under key, or ErrNotExist.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.begin(ctx, key)
	if err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("get %q: %w", key, ErrNotExist)
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return blob, nil
}

// Set replaces the blob stored under key.
func (s *FileStore) Set(ctx context.Context, key string, blob []byte) error {
	path, err := s.begin(ctx, key)
	if err != nil {
		return err
	}
	f, err := atomicfile.New(path)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	defer f.RemoveIfNotClosed()
	if _, err := f.Write(blob); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Remove deletes the files for the given keys. Missing keys are ignored.
func (s *FileStore) Remove(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		path, err := s.begin(ctx, key)
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %q: %w", key, err)
		}
	}
	return nil
}

// begin validates the operation preconditions and resolves the key path.
func (s *FileStore) begin(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return "", fmt.Errorf("store is closed")
	}
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+".dat"), nil
}
