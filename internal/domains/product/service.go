package product

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the catalog business logic contract
type Service interface {
	// Create persists a product for the publisher, storing the image
	// first and then writing product + genre associations in one
	// transaction.
	Create(ctx context.Context, publisherID uuid.UUID, form ProductForm, image *UploadedImage) (*Product, error)

	// Update rewrites the product. The full genre set is replaced; a
	// missing image keeps the stored reference. An ownership mismatch
	// surfaces as ErrProductNotFound.
	Update(ctx context.Context, publisherID, productID uuid.UUID, form ProductForm, image *UploadedImage) (*Product, error)

	// ListPublic returns available products, optionally filtered by a
	// case-insensitive substring over name and description.
	ListPublic(ctx context.Context, query string) ([]Product, error)

	// ListOwned returns the caller's catalog with request counts
	ListOwned(ctx context.Context, publisherID uuid.UUID) ([]Product, error)

	// Get returns one product with publisher summary and genres
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
}
