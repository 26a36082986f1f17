package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository defines the data access contract for identity records.
// The Tx variants run inside a caller-owned transaction so registration
// can create the user and its publisher profile atomically.
type Repository interface {
	// CreateTx inserts a user inside the given transaction.
	// Returns ErrEmailAlreadyExists on a unique violation.
	CreateTx(ctx context.Context, tx pgx.Tx, u *User) error

	// FindByID returns ErrUserNotFound when no row matches
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail is the login lookup.
	// Returns ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks email uniqueness before insert
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateNameTx updates the display name inside a transaction.
	// Used by the publisher profile update, which persists the contact
	// name onto the linked user.
	UpdateNameTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, name string) error
}
