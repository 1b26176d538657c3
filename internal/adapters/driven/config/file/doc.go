// Package file provides the TOML-based configuration store.
// Configuration lives on the local filesystem, outside the data store
// document it configures.
package file
