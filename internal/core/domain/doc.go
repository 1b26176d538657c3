// Package domain defines the core business entities for Podro.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Store: The full persisted structure: modules plus schema
//   - Object: An ordered key-value mapping (a module, or any nested object)
//   - Value: The tagged union of storable JSON values
//   - Schema: Optional display metadata stored under "_schema"
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
