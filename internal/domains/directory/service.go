package directory

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the directory read contract
type Service interface {
	// List returns the directory, optionally filtered by a
	// case-insensitive substring over company names and descriptions.
	List(ctx context.Context, query string) ([]Listing, error)

	// Get returns one publisher's listing
	Get(ctx context.Context, id uuid.UUID) (*Listing, error)
}
