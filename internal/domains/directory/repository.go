package directory

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines read access for the public directory
type Repository interface {
	// ListPublishers returns every publisher ordered by company name,
	// each with its directory-worthy products newest-first.
	ListPublishers(ctx context.Context) ([]Listing, error)

	// FindPublisher returns ErrPublisherNotFound when no row matches
	FindPublisher(ctx context.Context, id uuid.UUID) (*Listing, error)
}
