package request

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the request lifecycle contract
type Service interface {
	// Create accepts an anonymous submission. The product must exist
	// and be available; the request always starts PENDING. A publisher
	// notification email is queued fire-and-forget: a broken queue
	// never loses the request.
	Create(ctx context.Context, req CreateRequestRequest) (*Request, error)

	// ListForPublisher returns the inbox for one publisher
	ListForPublisher(ctx context.Context, publisherID uuid.UUID) ([]Request, error)

	// Get returns one request with its product view
	Get(ctx context.Context, id uuid.UUID) (*Request, error)

	// UpdateStatus moves a request along PENDING -> APPROVED/DENIED,
	// APPROVED -> FULFILLED. The caller must own the product; a
	// mismatch returns ErrNotOwner, an off-graph move
	// ErrInvalidTransition.
	UpdateStatus(ctx context.Context, publisherID, requestID uuid.UUID, next Status) (*Request, error)
}
