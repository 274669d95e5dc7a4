// Package store persists generated designs.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: in-memory storage for development/testing
//   - file: JSON files in a directory, for CLI use
//   - sqlite: single-file database for local deployments
//   - mongo: document database for multi-instance deployments
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemory()
//
//	// CLI
//	st, err := store.NewFile("")  // Uses ~/.config/aiarchitect/designs/
//
//	// Local service
//	st, err := store.OpenSQLite("designs.db")
//
// Persist and retrieve designs:
//
//	id, err := st.Save(ctx, d)
//	if err != nil {
//	    return err
//	}
//	d, err := st.Load(ctx, id)
//
// Load returns a NOT_FOUND coded error for unknown IDs; every other
// failure carries STORAGE_ERROR.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// Store is the interface for design persistence backends.
type Store interface {
	// Save stores the design under a fresh ID and returns it.
	Save(ctx context.Context, d *design.ArchitecturalDesign) (string, error)

	// Load retrieves a design by ID. Returns a NOT_FOUND error when no
	// design exists under the ID.
	Load(ctx context.Context, id string) (*design.ArchitecturalDesign, error)

	// Delete removes a design. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored designs.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources. No-op for memory and file stores.
	Close() error
}

// NewID returns a fresh design ID.
func NewID() string {
	return uuid.NewString()
}
