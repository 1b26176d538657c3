package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/pocketdro/podro-cli/internal/core/domain"
	"github.com/pocketdro/podro-cli/internal/core/ports/driven"
	"github.com/pocketdro/podro-cli/internal/core/ports/driving"
	"github.com/pocketdro/podro-cli/internal/logger"
)

// Ensure DatastoreService implements the interface.
var _ driving.DatastoreService = (*DatastoreService)(nil)

// DatastoreService manages the structured data store. Every mutation
// re-reads the whole serialized document, applies the change and
// rewrites the document; there is no per-key isolation. The mutex
// serializes in-process cycles so two concurrent calls cannot
// interleave and silently drop a write. Writers in other processes
// remain last-write-wins; the system is single-writer by design.
type DatastoreService struct {
	mu   sync.Mutex
	blob driven.BlobStore
}

// NewDatastoreService creates a new data store service over the given
// storage backend.
func NewDatastoreService(blob driven.BlobStore) *DatastoreService {
	return &DatastoreService{blob: blob}
}

// load reads and parses the persisted document. Missing, unreadable or
// corrupt storage yields an empty store; reads never fail.
func (s *DatastoreService) load(ctx context.Context) *domain.Store {
	data, err := s.blob.Read(ctx)
	if err != nil {
		logger.Warn("unreadable store at %s, starting empty: %v", s.blob.Path(), err)
		return domain.NewStore()
	}
	if len(data) == 0 {
		return domain.NewStore()
	}

	store, err := domain.ParseStore(data)
	if err != nil {
		logger.Warn("corrupt store at %s, starting empty: %v", s.blob.Path(), err)
		return domain.NewStore()
	}
	return store
}

// persist serializes and writes the store back to the backend.
func (s *DatastoreService) persist(ctx context.Context, store *domain.Store) error {
	data, err := store.Encode()
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := s.blob.Write(ctx, data); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	return nil
}

// validateNames rejects empty module or key identifiers.
func validateNames(module, key string) error {
	if module == "" {
		return fmt.Errorf("%w: module name is required", domain.ErrInvalidArgument)
	}
	if key == "" {
		return fmt.Errorf("%w: key name is required", domain.ErrInvalidArgument)
	}
	return nil
}

// GetAllItems returns the full current store, schema included.
func (s *DatastoreService) GetAllItems(ctx context.Context) *domain.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// GetItem returns the value at (module, key), or ok=false if absent.
func (s *DatastoreService) GetItem(ctx context.Context, module, key string) (domain.Value, bool, error) {
	if err := validateNames(module, key); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.load(ctx).Get(module, key)
	return v, ok, nil
}

// SetItem writes value at (module, key), overwriting any prior value.
func (s *DatastoreService) SetItem(ctx context.Context, module, key string, value domain.Value) error {
	if err := validateNames(module, key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	store := s.load(ctx)
	store.Set(module, key, value)
	if err := s.persist(ctx, store); err != nil {
		return err
	}
	logger.Debug("set %s/%s", module, key)
	return nil
}

// DeleteItem removes key from module; a module emptied by the delete
// is removed entirely. Absent module or key is a no-op.
func (s *DatastoreService) DeleteItem(ctx context.Context, module, key string) error {
	if err := validateNames(module, key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	store := s.load(ctx)
	if _, ok := store.Get(module, key); !ok {
		return nil
	}
	store.Delete(module, key)
	if err := s.persist(ctx, store); err != nil {
		return err
	}
	logger.Debug("deleted %s/%s", module, key)
	return nil
}

// ClearAllItems replaces the store with an empty mapping. The schema
// entry is discarded along with the data.
func (s *DatastoreService) ClearAllItems(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, domain.NewStore()); err != nil {
		return err
	}
	logger.Info("store cleared")
	return nil
}

// Export serializes the store to pretty-printed JSON. The schema entry
// is always first and defaulted when absent; data modules follow in
// stored order. The stored state is not mutated - the default schema
// exists only in the output.
//
// A stored schema is copied verbatim, not decoded and re-encoded: the
// store does not interpret the entry, so fields beyond the known labels
// survive an import/export round trip.
func (s *DatastoreService) Export(ctx context.Context) ([]byte, string, error) {
	s.mu.Lock()
	store := s.load(ctx)
	s.mu.Unlock()

	out := domain.NewStore()
	if raw, ok := store.Raw(domain.SchemaKey); ok {
		out.SetRaw(domain.SchemaKey, raw)
	} else {
		out.SetSchema(domain.DefaultSchema())
	}

	for _, name := range store.Modules() {
		if raw, ok := store.Raw(name); ok {
			out.SetRaw(name, raw)
		}
	}

	data, err := out.Encode()
	if err != nil {
		return nil, "", fmt.Errorf("encoding export: %w", err)
	}

	var pretty []byte
	pretty, err = indentJSON(data)
	if err != nil {
		return nil, "", fmt.Errorf("formatting export: %w", err)
	}
	return pretty, domain.ExportFilename, nil
}

// Import replaces the entire store with the parsed contents of r.
// This is a full replace, not a merge: modules absent from the input
// are lost. Validation happens fully in memory before the replace is
// committed, so a failed import leaves the store untouched.
func (s *DatastoreService) Import(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: reading import: %v", domain.ErrParse, err)
	}

	store, err := domain.ParseStore(data)
	if err != nil {
		return err
	}

	// A cancelled import must leave the store unmodified.
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, store); err != nil {
		return err
	}
	logger.Info("imported %d modules (%d keys)", len(store.Modules()), store.KeyCount())
	return nil
}

// indentJSON reformats compact JSON with 2-space indentation and a
// trailing newline, the shape consumers expect from exported files.
func indentJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
