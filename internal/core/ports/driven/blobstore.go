package driven

import "context"

// BlobStore persists the serialized data store as a single opaque blob
// under one fixed location. The store is rewritten in full on every
// mutation; there are no incremental writes.
//
// Implementations handle the medium (file on disk, embedded database,
// in-memory) and must map quota or disk-space failures to
// domain.ErrStorageFull so callers can surface them.
type BlobStore interface {
	// Read returns the current blob. A missing blob is not an error:
	// implementations return (nil, nil) so the caller can start empty.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the blob with data. The write is atomic with
	// respect to Read: a reader sees either the old or the new blob,
	// never a partial one.
	Write(ctx context.Context, data []byte) error

	// Path returns a human-readable location of the blob.
	Path() string
}
