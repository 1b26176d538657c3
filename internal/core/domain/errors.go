package domain

import "errors"

// Domain errors represent data store failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidArgument indicates a missing or empty module or key name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrParse indicates content that is not syntactically valid JSON.
	ErrParse = errors.New("invalid JSON")

	// ErrFormat indicates a JSON document whose root is not a plain object.
	// Arrays, scalars and null cannot form a data store.
	ErrFormat = errors.New("root must be a JSON object")

	// ErrStorageFull indicates the storage backend rejected a write,
	// typically because the disk or quota is exhausted.
	ErrStorageFull = errors.New("storage full")
)
