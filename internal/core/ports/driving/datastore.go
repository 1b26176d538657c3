package driving

import (
	"context"
	"io"

	"github.com/pocketdro/podro-cli/internal/core/domain"
)

// DatastoreService is the interface consumers use to read and mutate
// the structured data store. It is the only access path to the
// persisted document.
//
// Reads are lenient: missing or corrupt storage yields an empty store.
// Writes are strict: empty identifiers, unreadable imports and rejected
// backend writes all surface as errors for the caller to present.
type DatastoreService interface {
	// GetAllItems returns the full current store, including the schema
	// entry if present. It never fails; corrupt or missing storage
	// yields an empty store.
	GetAllItems(ctx context.Context) *domain.Store

	// GetItem returns the value at (module, key). ok is false when the
	// module or key is absent; absence is not an error. Empty module
	// or key names return domain.ErrInvalidArgument.
	GetItem(ctx context.Context, module, key string) (domain.Value, bool, error)

	// SetItem writes value at (module, key), creating the module if
	// needed and overwriting any prior value. Empty names return
	// domain.ErrInvalidArgument; rejected backend writes propagate.
	SetItem(ctx context.Context, module, key string, value domain.Value) error

	// DeleteItem removes key from module. Absent module or key is a
	// no-op. A module emptied by the delete is removed entirely.
	DeleteItem(ctx context.Context, module, key string) error

	// ClearAllItems replaces the entire store with an empty mapping,
	// schema included.
	ClearAllItems(ctx context.Context) error

	// Export serializes the store to pretty-printed JSON with the
	// schema entry first, synthesizing default labels when the store
	// has none, and returns the bytes plus a suggested filename.
	// The stored state is not mutated.
	Export(ctx context.Context) ([]byte, string, error)

	// Import parses r as a JSON document and replaces the entire store
	// with it. The root must be a plain object (domain.ErrFormat);
	// invalid JSON is domain.ErrParse. On any failure, including
	// context cancellation, the store is left untouched.
	Import(ctx context.Context, r io.Reader) error
}
