package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/publisher"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/request"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/user"
	"github.com/spycraft69/GAMA-Product-Request/internal/infrastructure/email"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared/utils"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// TaskEnqueuer is the slice of the queue client this service needs
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error
}

// eventDateLayouts accepted from the submission form
var eventDateLayouts = []string{"2006-01-02", time.RFC3339}

// requestService implements request.Service. The publisher and user
// repositories resolve the notification recipient: product ->
// publisher profile -> account email.
type requestService struct {
	repo          request.Repository
	productRepo   product.Repository
	publisherRepo publisher.Repository
	userRepo      user.Repository
	tasks         TaskEnqueuer
}

func NewRequestService(
	repo request.Repository,
	productRepo product.Repository,
	publisherRepo publisher.Repository,
	userRepo user.Repository,
	tasks TaskEnqueuer,
) request.Service {
	return &requestService{
		repo:          repo,
		productRepo:   productRepo,
		publisherRepo: publisherRepo,
		userRepo:      userRepo,
		tasks:         tasks,
	}
}

func (s *requestService) Create(ctx context.Context, req request.CreateRequestRequest) (*request.Request, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, product.ErrProductNotFound
	}

	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Publishers can pause requests without unlisting the product
	if !p.IsAvailable {
		return nil, request.ErrProductUnavailable
	}

	now := time.Now()
	newRequest := &request.Request{
		ID:                uuid.New(),
		ProductID:         p.ID,
		Status:            request.StatusPending,
		OrganizationName:  req.OrganizationName,
		OrganizationType:  req.OrganizationType,
		ContactName:       req.ContactName,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      utils.TrimToNil(req.ContactPhone),
		ShippingAddress:   req.ShippingAddress,
		ShippingCity:      req.ShippingCity,
		ShippingState:     req.ShippingState,
		ShippingZip:       req.ShippingZip,
		ShippingCountry:   req.ShippingCountry,
		EventDate:         parseEventDate(req.EventDate),
		ExpectedAttendees: utils.ParseOptionalInt(req.ExpectedAttendees),
		Message:           utils.TrimToNil(req.Message),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, newRequest); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	logger.Info("Demo request created", map[string]interface{}{
		"requestId": newRequest.ID.String(),
		"productId": p.ID.String(),
	})

	// Fire-and-forget. The request is already stored; a dead queue
	// only costs the publisher an email.
	s.enqueueNotification(ctx, newRequest, p)

	newRequest.Product = p
	return newRequest, nil
}

func (s *requestService) ListForPublisher(ctx context.Context, publisherID uuid.UUID) ([]request.Request, error) {
	return s.repo.ListByPublisher(ctx, publisherID)
}

func (s *requestService) Get(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *requestService) UpdateStatus(ctx context.Context, publisherID, requestID uuid.UUID, next request.Status) (*request.Request, error) {
	if !next.IsValid() {
		return nil, request.ErrInvalidStatus
	}

	req, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.Product == nil || req.Product.PublisherID != publisherID {
		return nil, request.ErrNotOwner
	}

	if !req.Status.CanTransitionTo(next) {
		return nil, request.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, requestID, next); err != nil {
		return nil, err
	}

	logger.Info("Request status changed", map[string]interface{}{
		"requestId": requestID.String(),
		"from":      req.Status.String(),
		"to":        next.String(),
	})

	return s.repo.FindByID(ctx, requestID)
}

// enqueueNotification resolves the product owner's account email and
// hands the task to the worker. Every failure is logged and swallowed.
func (s *requestService) enqueueNotification(ctx context.Context, req *request.Request, p *product.Product) {
	profile, err := s.publisherRepo.FindByID(ctx, p.PublisherID)
	if err != nil {
		logger.Error("request notification: resolve publisher failed", err)
		return
	}

	owner, err := s.userRepo.FindByID(ctx, profile.UserID)
	if err != nil {
		logger.Error("request notification: resolve owner failed", err)
		return
	}

	payload := email.RequestNotificationData{
		To:               owner.Email,
		ProductName:      p.Name,
		OrganizationName: req.OrganizationName,
		OrganizationType: req.OrganizationType,
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
		ShippingAddress:  req.ShippingAddress,
		ShippingCity:     req.ShippingCity,
		ShippingState:    req.ShippingState,
		ShippingZip:      req.ShippingZip,
		ShippingCountry:  req.ShippingCountry,
	}
	if req.Message != nil {
		payload.Message = *req.Message
	}

	err = s.tasks.Enqueue(ctx, shared.TypeRequestCreatedEmail, payload,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(3),
	)
	if err != nil {
		logger.Error("request notification: enqueue failed", err)
	}
}

func parseEventDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	// Unparseable dates are dropped rather than rejected; the field is
	// informational.
	logger.Warn("Dropping unparseable event date", map[string]interface{}{"eventDate": raw})
	return nil
}
