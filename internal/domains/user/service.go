package user

import (
	"context"
)

// Service defines the identity business logic contract
type Service interface {
	// Register creates a user, and for the PUBLISHER role its publisher
	// profile, in one transaction.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login verifies credentials and issues a session token
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}
