// Package sqlite provides the public API for the SQLite SylvaNote backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/sylvanote/sylvanote/internal/sqlite"
	"github.com/sylvanote/sylvanote/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{DBPath: "sylvanote.db"})
//	defer backend.Detach()
func NewBackend() types.Store {
	return sqlite.NewBackend()
}
