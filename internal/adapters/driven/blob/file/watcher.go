package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports external modifications of the store file. The store
// assumes a single writer; the watcher makes other writers visible
// instead of letting their changes go unnoticed.
//
// The parent directory is watched rather than the file itself, because
// atomic rewrites (temp file + rename) replace the inode the file
// handle points at.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
}

// NewWatcher creates a watcher for the store file at path.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close() //nolint:errcheck
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{watcher: fsw, filePath: path}, nil
}

// Watch invokes fn after each change to the store file. It blocks
// until the context is cancelled or the underlying watcher fails.
func (w *Watcher) Watch(ctx context.Context, fn func()) error {
	base := filepath.Base(w.filePath)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				fn()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", w.filePath, err)
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
