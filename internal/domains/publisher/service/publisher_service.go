package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/publisher"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/user"
	"github.com/spycraft69/GAMA-Product-Request/internal/infrastructure/storage"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared/utils"
	"github.com/spycraft69/GAMA-Product-Request/pkg/database"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// ObjectUploader is the slice of the storage client the profile needs
type ObjectUploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// logoImageDim keeps logos small, they only render in cards and headers
const logoImageDim = 512

// publisherService implements publisher.Service.
// The user repository is injected because the contact name lives on the
// users table and changes in the same transaction as the profile.
type publisherService struct {
	repo     publisher.Repository
	userRepo user.Repository
	tx       database.TxRunner
	uploads  ObjectUploader
	images   *storage.ImageProcessor
}

func NewPublisherService(
	repo publisher.Repository,
	userRepo user.Repository,
	tx database.TxRunner,
	uploads ObjectUploader,
	images *storage.ImageProcessor,
) publisher.Service {
	return &publisherService{
		repo:     repo,
		userRepo: userRepo,
		tx:       tx,
		uploads:  uploads,
		images:   images,
	}
}

func (s *publisherService) GetProfile(ctx context.Context, userID uuid.UUID) (*publisher.ProfileResponse, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, profile)
}

func (s *publisherService) UpdateProfile(ctx context.Context, userID uuid.UUID, req publisher.UpdateProfileRequest) (*publisher.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Required gets past ozzo with whitespace-only input, so trim and
	// re-check before persisting.
	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		return nil, publisher.ErrCompanyNameRequired
	}
	contactName := strings.TrimSpace(req.ContactName)
	if contactName == "" {
		return nil, publisher.ErrContactNameRequired
	}

	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.CompanyName = companyName
	profile.Description = utils.TrimToNil(req.Description)
	profile.Website = utils.TrimToNil(req.Website)
	profile.UpdatedAt = time.Now()

	err = s.tx.RunTx(ctx, func(tx pgx.Tx) error {
		if err := s.userRepo.UpdateNameTx(ctx, tx, userID, contactName); err != nil {
			return fmt.Errorf("update contact name: %w", err)
		}
		return s.repo.UpdateTx(ctx, tx, profile)
	})
	if err != nil {
		return nil, fmt.Errorf("update publisher profile: %w", err)
	}

	return s.buildResponse(ctx, profile)
}

func (s *publisherService) UploadLogo(ctx context.Context, userID uuid.UUID, fileName string, data []byte) (*publisher.ProfileResponse, error) {
	if len(data) == 0 {
		return nil, publisher.ErrLogoRequired
	}

	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.images.ValidateImage(data); err != nil {
		logger.Warn("Rejected publisher logo", map[string]interface{}{
			"publisherId": profile.ID.String(),
			"error":       err.Error(),
		})
		return nil, publisher.ErrInvalidImage
	}

	normalized, err := s.images.Normalize(data, logoImageDim)
	if err != nil {
		return nil, publisher.ErrInvalidImage
	}

	key := storage.ObjectKey("logos", fileName)
	url, err := s.uploads.Upload(ctx, key, normalized, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("upload logo: %w", err)
	}

	if err := s.repo.UpdateLogoURL(ctx, profile.ID, url); err != nil {
		return nil, err
	}

	profile.LogoURL = &url
	return s.buildResponse(ctx, profile)
}

// buildResponse joins the profile with the linked user's contact data
func (s *publisherService) buildResponse(ctx context.Context, profile *publisher.Profile) (*publisher.ProfileResponse, error) {
	owner, err := s.userRepo.FindByID(ctx, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("load profile owner: %w", err)
	}

	return &publisher.ProfileResponse{
		ID:           profile.ID.String(),
		CompanyName:  profile.CompanyName,
		Description:  profile.Description,
		Website:      profile.Website,
		LogoURL:      profile.LogoURL,
		ContactName:  owner.Name,
		ContactEmail: owner.Email,
	}, nil
}
