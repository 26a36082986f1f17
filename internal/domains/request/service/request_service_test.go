package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/publisher"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/request"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/user"
	"github.com/spycraft69/GAMA-Product-Request/internal/infrastructure/email"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared"
)

// ========================================
// MOCKS
// ========================================

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) Create(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *mockRequestRepo) ListByPublisher(ctx context.Context, publisherID uuid.UUID) ([]request.Request, error) {
	args := m.Called(ctx, publisherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]request.Request), args.Error(1)
}

func (m *mockRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status request.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) CreateTx(ctx context.Context, tx pgx.Tx, p *product.Product) error {
	args := m.Called(ctx, tx, p)
	return args.Error(0)
}

func (m *mockProductRepo) UpdateTx(ctx context.Context, tx pgx.Tx, p *product.Product) error {
	args := m.Called(ctx, tx, p)
	return args.Error(0)
}

func (m *mockProductRepo) ReplaceGenresTx(ctx context.Context, tx pgx.Tx, productID uuid.UUID, names []string) error {
	args := m.Called(ctx, tx, productID, names)
	return args.Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductRepo) ListAvailable(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *mockProductRepo) ListByPublisher(ctx context.Context, publisherID uuid.UUID) ([]product.Product, error) {
	args := m.Called(ctx, publisherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

type mockPublisherRepo struct {
	mock.Mock
}

func (m *mockPublisherRepo) CreateTx(ctx context.Context, tx pgx.Tx, p *publisher.Profile) error {
	args := m.Called(ctx, tx, p)
	return args.Error(0)
}

func (m *mockPublisherRepo) FindByID(ctx context.Context, id uuid.UUID) (*publisher.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*publisher.Profile), args.Error(1)
}

func (m *mockPublisherRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*publisher.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*publisher.Profile), args.Error(1)
}

func (m *mockPublisherRepo) UpdateTx(ctx context.Context, tx pgx.Tx, p *publisher.Profile) error {
	args := m.Called(ctx, tx, p)
	return args.Error(0)
}

func (m *mockPublisherRepo) UpdateLogoURL(ctx context.Context, id uuid.UUID, logoURL string) error {
	args := m.Called(ctx, id, logoURL)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateTx(ctx context.Context, tx pgx.Tx, u *user.User) error {
	args := m.Called(ctx, tx, u)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpdateNameTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, name string) error {
	args := m.Called(ctx, tx, id, name)
	return args.Error(0)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	args := m.Called(ctx, taskType, payload)
	return args.Error(0)
}

// ========================================
// FIXTURES
// ========================================

type testDeps struct {
	requests   *mockRequestRepo
	products   *mockProductRepo
	publishers *mockPublisherRepo
	users      *mockUserRepo
	tasks      *mockEnqueuer
}

func newTestService() (request.Service, *testDeps) {
	deps := &testDeps{
		requests:   new(mockRequestRepo),
		products:   new(mockProductRepo),
		publishers: new(mockPublisherRepo),
		users:      new(mockUserRepo),
		tasks:      new(mockEnqueuer),
	}
	svc := NewRequestService(deps.requests, deps.products, deps.publishers, deps.users, deps.tasks)
	return svc, deps
}

func validSubmission(productID uuid.UUID) request.CreateRequestRequest {
	return request.CreateRequestRequest{
		ProductID:        productID.String(),
		OrganizationName: "Northside Library",
		OrganizationType: "EDUCATIONAL",
		ContactName:      "Sam Okafor",
		ContactEmail:     "sam@northside.example",
		ShippingAddress:  "12 Birch Street",
		ShippingCity:     "Madison",
		ShippingState:    "WI",
		ShippingZip:      "53703",
		ShippingCountry:  "USA",
	}
}

func availableProduct(productID, publisherID uuid.UUID) *product.Product {
	return &product.Product{
		ID:          productID,
		PublisherID: publisherID,
		Name:        "Gloom Harbor",
		IsAvailable: true,
	}
}

// ========================================
// CREATE
// ========================================

func TestCreateRequest_MissingProduct(t *testing.T) {
	svc, deps := newTestService()

	productID := uuid.New()
	deps.products.On("FindByID", mock.Anything, productID).Return(nil, product.ErrProductNotFound)

	_, err := svc.Create(context.Background(), validSubmission(productID))

	assert.ErrorIs(t, err, product.ErrProductNotFound)
	deps.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRequest_UnavailableProduct(t *testing.T) {
	svc, deps := newTestService()

	productID := uuid.New()
	p := availableProduct(productID, uuid.New())
	p.IsAvailable = false
	deps.products.On("FindByID", mock.Anything, productID).Return(p, nil)

	_, err := svc.Create(context.Background(), validSubmission(productID))

	assert.ErrorIs(t, err, request.ErrProductUnavailable)
	deps.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	deps.tasks.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRequest_MissingShippingField(t *testing.T) {
	svc, deps := newTestService()

	sub := validSubmission(uuid.New())
	sub.ShippingZip = ""

	_, err := svc.Create(context.Background(), sub)

	assert.Error(t, err)
	deps.products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCreateRequest_StartsPendingAndNotifies(t *testing.T) {
	svc, deps := newTestService()

	productID := uuid.New()
	publisherID := uuid.New()
	ownerID := uuid.New()

	deps.products.On("FindByID", mock.Anything, productID).
		Return(availableProduct(productID, publisherID), nil)
	deps.requests.On("Create", mock.Anything, mock.MatchedBy(func(r *request.Request) bool {
		return r.Status == request.StatusPending && r.ProductID == productID
	})).Return(nil)
	deps.publishers.On("FindByID", mock.Anything, publisherID).Return(&publisher.Profile{
		ID:     publisherID,
		UserID: ownerID,
	}, nil)
	deps.users.On("FindByID", mock.Anything, ownerID).Return(&user.User{
		ID:    ownerID,
		Email: "owner@hexcrawl.example",
	}, nil)
	deps.tasks.On("Enqueue", mock.Anything, shared.TypeRequestCreatedEmail, mock.MatchedBy(func(p email.RequestNotificationData) bool {
		return p.To == "owner@hexcrawl.example" && p.ProductName == "Gloom Harbor"
	})).Return(nil)

	got, err := svc.Create(context.Background(), validSubmission(productID))

	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, got.Status)
	require.NotNil(t, got.Product)
	assert.Equal(t, "Gloom Harbor", got.Product.Name)
	deps.tasks.AssertExpectations(t)
}

func TestCreateRequest_SurvivesDeadQueue(t *testing.T) {
	svc, deps := newTestService()

	productID := uuid.New()
	publisherID := uuid.New()
	ownerID := uuid.New()

	deps.products.On("FindByID", mock.Anything, productID).
		Return(availableProduct(productID, publisherID), nil)
	deps.requests.On("Create", mock.Anything, mock.Anything).Return(nil)
	deps.publishers.On("FindByID", mock.Anything, publisherID).Return(&publisher.Profile{
		ID:     publisherID,
		UserID: ownerID,
	}, nil)
	deps.users.On("FindByID", mock.Anything, ownerID).Return(&user.User{
		ID:    ownerID,
		Email: "owner@hexcrawl.example",
	}, nil)
	deps.tasks.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis: connection refused"))

	got, err := svc.Create(context.Background(), validSubmission(productID))

	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, got.Status)
}

func TestCreateRequest_ParsesOptionalFields(t *testing.T) {
	svc, deps := newTestService()

	productID := uuid.New()
	publisherID := uuid.New()

	sub := validSubmission(productID)
	sub.EventDate = "2026-10-04"
	sub.ExpectedAttendees = "40"
	sub.ContactPhone = "  "

	var stored *request.Request
	deps.products.On("FindByID", mock.Anything, productID).
		Return(availableProduct(productID, publisherID), nil)
	deps.requests.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*request.Request)
	}).Return(nil)
	deps.publishers.On("FindByID", mock.Anything, publisherID).
		Return(nil, publisher.ErrProfileNotFound)

	_, err := svc.Create(context.Background(), sub)

	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.EventDate)
	assert.Equal(t, "2026-10-04", stored.EventDate.Format("2006-01-02"))
	require.NotNil(t, stored.ExpectedAttendees)
	assert.Equal(t, 40, *stored.ExpectedAttendees)
	assert.Nil(t, stored.ContactPhone)
}

// ========================================
// STATUS CHANGES
// ========================================

func pendingRequest(requestID, productID, publisherID uuid.UUID) *request.Request {
	return &request.Request{
		ID:        requestID,
		ProductID: productID,
		Status:    request.StatusPending,
		Product:   availableProduct(productID, publisherID),
	}
}

func TestUpdateStatus_Approve(t *testing.T) {
	svc, deps := newTestService()

	requestID := uuid.New()
	productID := uuid.New()
	publisherID := uuid.New()

	stored := pendingRequest(requestID, productID, publisherID)
	approved := *stored
	approved.Status = request.StatusApproved

	deps.requests.On("FindByID", mock.Anything, requestID).Return(stored, nil).Once()
	deps.requests.On("UpdateStatus", mock.Anything, requestID, request.StatusApproved).Return(nil)
	deps.requests.On("FindByID", mock.Anything, requestID).Return(&approved, nil).Once()

	got, err := svc.UpdateStatus(context.Background(), publisherID, requestID, request.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, got.Status)
	deps.requests.AssertExpectations(t)
}

func TestUpdateStatus_ForeignPublisher(t *testing.T) {
	svc, deps := newTestService()

	requestID := uuid.New()
	stored := pendingRequest(requestID, uuid.New(), uuid.New())

	deps.requests.On("FindByID", mock.Anything, requestID).Return(stored, nil)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), requestID, request.StatusApproved)

	assert.ErrorIs(t, err, request.ErrNotOwner)
	deps.requests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_SkippingApprovalRejected(t *testing.T) {
	svc, deps := newTestService()

	requestID := uuid.New()
	publisherID := uuid.New()
	stored := pendingRequest(requestID, uuid.New(), publisherID)

	deps.requests.On("FindByID", mock.Anything, requestID).Return(stored, nil)

	_, err := svc.UpdateStatus(context.Background(), publisherID, requestID, request.StatusFulfilled)

	assert.ErrorIs(t, err, request.ErrInvalidTransition)
}

func TestUpdateStatus_TerminalStateFrozen(t *testing.T) {
	svc, deps := newTestService()

	requestID := uuid.New()
	publisherID := uuid.New()
	stored := pendingRequest(requestID, uuid.New(), publisherID)
	stored.Status = request.StatusDenied

	deps.requests.On("FindByID", mock.Anything, requestID).Return(stored, nil)

	_, err := svc.UpdateStatus(context.Background(), publisherID, requestID, request.StatusApproved)

	assert.ErrorIs(t, err, request.ErrInvalidTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, deps := newTestService()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), request.Status("SHIPPED"))

	assert.ErrorIs(t, err, request.ErrInvalidStatus)
	deps.requests.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateStatus_MissingRequest(t *testing.T) {
	svc, deps := newTestService()

	requestID := uuid.New()
	deps.requests.On("FindByID", mock.Anything, requestID).Return(nil, request.ErrRequestNotFound)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), requestID, request.StatusApproved)

	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}
