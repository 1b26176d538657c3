// Package file provides the default file-backed blob backend.
// The store document lives in a single JSON file, rewritten atomically
// on every mutation.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/pocketdro/podro-cli/internal/core/domain"
	"github.com/pocketdro/podro-cli/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore is a file-based implementation of driven.BlobStore.
type BlobStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewBlobStore creates a file-backed blob store at path.
// If path is empty, defaults to ~/.podro/datastore.json.
func NewBlobStore(path string) (*BlobStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".podro", domain.ExportFilename)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}

	return &BlobStore{filePath: path}, nil
}

// Read returns the file contents, or (nil, nil) when the file does not
// exist yet.
func (s *BlobStore) Read(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the file contents. The data is written to a temporary
// file in the same directory and renamed into place, so a concurrent
// reader never sees a partial document.
func (s *BlobStore) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.filePath)
	tmp, err := os.CreateTemp(dir, ".datastore-*.tmp")
	if err != nil {
		return wrapStorageErr(err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()           //nolint:errcheck
		os.Remove(tmpName)    //nolint:errcheck
		return wrapStorageErr(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return wrapStorageErr(err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return err
	}
	if err := os.Rename(tmpName, s.filePath); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return wrapStorageErr(err)
	}
	return nil
}

// Path returns the store file path.
func (s *BlobStore) Path() string {
	return s.filePath
}

// wrapStorageErr maps out-of-space failures to domain.ErrStorageFull
// so callers can present them distinctly.
func wrapStorageErr(err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		return fmt.Errorf("%w: %v", domain.ErrStorageFull, err)
	}
	return err
}
