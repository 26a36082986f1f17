package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository defines data access for the catalog.
// The Tx variants run inside the caller's transaction: product write
// plus genre sync is all-or-nothing.
type Repository interface {
	// CreateTx inserts the product row
	CreateTx(ctx context.Context, tx pgx.Tx, p *Product) error

	// UpdateTx rewrites the editable columns.
	// Returns ErrProductNotFound when no row matches the id.
	UpdateTx(ctx context.Context, tx pgx.Tx, p *Product) error

	// ReplaceGenresTx syncs the association set to exactly the given
	// names: delete all rows for the product, upsert each genre by
	// unique name, re-insert the associations. An empty list leaves the
	// product with zero associations.
	ReplaceGenresTx(ctx context.Context, tx pgx.Tx, productID uuid.UUID, names []string) error

	// FindByID loads one product with publisher summary and genre
	// names. Returns ErrProductNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// ListAvailable lists products with availability = true, publisher
	// summary and genres attached, newest-first.
	ListAvailable(ctx context.Context) ([]Product, error)

	// ListByPublisher lists a publisher's whole catalog regardless of
	// availability, annotated with live request counts, newest-first.
	ListByPublisher(ctx context.Context, publisherID uuid.UUID) ([]Product, error)
}
