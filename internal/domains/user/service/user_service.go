package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/publisher"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/user"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared/utils"
	"github.com/spycraft69/GAMA-Product-Request/pkg/database"
	pkgjwt "github.com/spycraft69/GAMA-Product-Request/pkg/jwt"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// userService implements user.Service
type userService struct {
	repo          user.Repository
	publisherRepo publisher.Repository
	tx            database.TxRunner
	jwtManager    *pkgjwt.Manager
}

// NewUserService wires the identity service.
// The transaction runner lets Register span the users and
// publisher_profiles tables in one transaction.
func NewUserService(
	repo user.Repository,
	publisherRepo publisher.Repository,
	tx database.TxRunner,
	jwtManager *pkgjwt.Manager,
) user.Service {
	return &userService{
		repo:          repo,
		publisherRepo: publisherRepo,
		tx:            tx,
		jwtManager:    jwtManager,
	}
}

// Register creates the account. For PUBLISHER signups the publisher
// profile is created in the same transaction: either both rows land or
// neither does.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	// Handler validates too; re-checking keeps the service safe to call
	// from other entry points.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role := user.Role(req.Role)
	if !role.IsValid() {
		return nil, user.ErrInvalidRole
	}

	// ozzo's Required accepts whitespace-only strings, so the company
	// name gets trimmed and re-checked here.
	companyName := strings.TrimSpace(req.CompanyName)
	if role.IsPublisher() && companyName == "" {
		return nil, user.ErrCompanyRequired
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	// bcrypt cost 12
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Name:         req.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Organization name only applies to requestor roles
	if !role.IsPublisher() {
		newUser.Organization = utils.TrimToNil(req.Organization)
	}

	err = s.tx.RunTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.CreateTx(ctx, tx, newUser); err != nil {
			return err
		}

		if role.IsPublisher() {
			profile := &publisher.Profile{
				ID:          uuid.New(),
				UserID:      newUser.ID,
				CompanyName: companyName,
				Website:     utils.TrimToNil(req.Website),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := s.publisherRepo.CreateTx(ctx, tx, profile); err != nil {
				return fmt.Errorf("create publisher profile: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, user.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	dto := newUser.ToDTO()
	return &dto, nil
}

// Login verifies credentials and issues a session token carrying the
// account role, plus the publisher profile id for PUBLISHER accounts.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the email exists
		return nil, user.ErrInvalidCredentials
	}

	// A stored role outside the known set is a data-integrity problem.
	// Log it, fail as plain bad credentials.
	if !u.Role.IsValid() {
		logger.Warn("user has unsupported role", map[string]interface{}{
			"user_id": u.ID.String(),
			"role":    u.Role.String(),
		})
		return nil, user.ErrInvalidCredentials
	}

	// Constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	publisherID := ""
	if u.Role.IsPublisher() {
		profile, err := s.publisherRepo.FindByUserID(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("resolve publisher profile: %w", err)
		}
		publisherID = profile.ID.String()
	}

	token, expiresAt, err := s.jwtManager.GenerateToken(u.ID.String(), u.Email, u.Role.String(), publisherID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        u.ToDTO(),
	}, nil
}
