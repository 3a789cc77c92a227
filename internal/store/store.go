// Package store provides the process-wide key-value persistence layer.
// Values are opaque text blobs; the store performs no parsing. A Set either
// fully replaces the previous blob or leaves it unchanged.
package store

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Get when no blob is stored under the key.
// Absence is normal control flow; callers match it with errors.Is.
var ErrNotExist = errors.New("key does not exist")

// ErrInvalidKey is returned for keys the store cannot represent.
var ErrInvalidKey = errors.New("invalid key")

// KeyValueStore is a durable mapping from string keys to text blobs.
//
// Operations block until the underlying medium responds. None of them
// support mid-flight cancellation: a caller that abandons interest simply
// discards the result. ctx is only consulted before the medium is touched.
type KeyValueStore interface {
	// Get returns the blob stored under key, or ErrNotExist.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, blob []byte) error
	// Remove deletes the given keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error
}
