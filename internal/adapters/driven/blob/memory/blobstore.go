// Package memory provides an in-memory blob backend for testing.
package memory

import (
	"context"
	"sync"

	"github.com/pocketdro/podro-cli/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore is an in-memory implementation of driven.BlobStore for testing.
type BlobStore struct {
	mu       sync.RWMutex
	data     []byte
	writeErr error
}

// NewBlobStore creates a new in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{}
}

// Read returns the current blob, or (nil, nil) when nothing was written.
func (s *BlobStore) Read(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Write replaces the blob.
func (s *BlobStore) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

// Path returns the blob location.
func (s *BlobStore) Path() string {
	return ":memory:"
}

// SetWriteErr makes subsequent writes fail with err. Tests use this to
// simulate quota or I/O failures.
func (s *BlobStore) SetWriteErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// SetData seeds the blob directly, bypassing Write and its injected
// error. Tests use this to plant corrupt content.
func (s *BlobStore) SetData(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
}
