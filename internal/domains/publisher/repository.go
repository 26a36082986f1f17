package publisher

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository defines data access for publisher profiles
type Repository interface {
	// CreateTx inserts a profile inside the registration transaction
	CreateTx(ctx context.Context, tx pgx.Tx, p *Profile) error

	// FindByID returns ErrProfileNotFound when no row matches
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)

	// FindByUserID resolves a user's profile.
	// Returns ErrProfileNotFound when the user has none.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// UpdateTx persists the editable company fields inside a transaction
	// shared with the linked user's name update.
	UpdateTx(ctx context.Context, tx pgx.Tx, p *Profile) error

	// UpdateLogoURL replaces the stored logo reference
	UpdateLogoURL(ctx context.Context, id uuid.UUID, logoURL string) error
}
