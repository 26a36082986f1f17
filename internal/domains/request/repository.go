package request

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for demo requests. Reads attach the
// product with its publisher summary and genres, since every consumer
// of a request needs the product context.
type Repository interface {
	Create(ctx context.Context, r *Request) error

	// FindByID returns ErrRequestNotFound when no row matches
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)

	// ListByPublisher lists requests targeting the publisher's
	// products, newest-first.
	ListByPublisher(ctx context.Context, publisherID uuid.UUID) ([]Request, error)

	// UpdateStatus persists a status change.
	// Returns ErrRequestNotFound when no row matches.
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}
