package publisher

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the publisher profile business logic contract
type Service interface {
	// GetProfile returns the caller's own profile with contact details
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error)

	// UpdateProfile persists the company fields and the contact name in
	// one transaction.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error)

	// UploadLogo validates and stores the image, then persists its URL.
	// The previous logo object is left in place.
	UploadLogo(ctx context.Context, userID uuid.UUID, fileName string, data []byte) (*ProfileResponse, error)
}
