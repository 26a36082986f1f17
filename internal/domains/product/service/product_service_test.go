package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
	"github.com/spycraft69/GAMA-Product-Request/internal/infrastructure/storage"
	"github.com/spycraft69/GAMA-Product-Request/pkg/database"
)

// ========================================
// MOCKS
// ========================================

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

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

// passthroughTx runs the unit of work directly, handing the repo mocks
// a nil transaction.
type passthroughTx struct{}

func (passthroughTx) RunTx(ctx context.Context, fn database.TxFunc) error {
	return fn(nil)
}

func newTestService(repo *mockProductRepo, uploads *mockUploader) product.Service {
	return NewProductService(repo, passthroughTx{}, uploads, storage.NewImageProcessor())
}

func strPtr(s string) *string { return &s }

// ========================================
// CREATE
// ========================================

func TestCreate_BlankNameRejected(t *testing.T) {
	repo := new(mockProductRepo)
	svc := newTestService(repo, new(mockUploader))

	_, err := svc.Create(context.Background(), uuid.New(), product.ProductForm{
		Name: "   ",
	}, nil)

	assert.ErrorIs(t, err, product.ErrNameRequired)
	repo.AssertNotCalled(t, "CreateTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_InvalidImageRejected(t *testing.T) {
	repo := new(mockProductRepo)
	uploads := new(mockUploader)
	svc := newTestService(repo, uploads)

	_, err := svc.Create(context.Background(), uuid.New(), product.ProductForm{
		Name: "Gloom Harbor",
	}, &product.UploadedImage{
		FileName: "box.jpg",
		Data:     []byte("definitely not pixels"),
	})

	assert.ErrorIs(t, err, product.ErrInvalidImage)
	uploads.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreImage_UploadsNormalizedJPEG(t *testing.T) {
	uploads := new(mockUploader)
	svc := &productService{
		uploads: uploads,
		images:  storage.NewImageProcessor(),
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))

	uploads.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Return("http://localhost:9000/gama-uploads/products/abc_box.png", nil)

	url, err := svc.storeImage(context.Background(), &product.UploadedImage{
		FileName: "box.png",
		Data:     buf.Bytes(),
	})

	require.NoError(t, err)
	assert.Contains(t, url, "products/")
	uploads.AssertExpectations(t)
}

// ========================================
// UPDATE
// ========================================

func TestUpdate_MissingProduct(t *testing.T) {
	repo := new(mockProductRepo)
	svc := newTestService(repo, new(mockUploader))

	productID := uuid.New()
	repo.On("FindByID", mock.Anything, productID).Return(nil, product.ErrProductNotFound)

	_, err := svc.Update(context.Background(), uuid.New(), productID, product.ProductForm{Name: "X"}, nil)

	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestUpdate_ForeignProductLooksMissing(t *testing.T) {
	repo := new(mockProductRepo)
	svc := newTestService(repo, new(mockUploader))

	owner := uuid.New()
	caller := uuid.New()
	productID := uuid.New()

	repo.On("FindByID", mock.Anything, productID).Return(&product.Product{
		ID:          productID,
		PublisherID: owner,
		Name:        "Tide Runners",
	}, nil)

	_, err := svc.Update(context.Background(), caller, productID, product.ProductForm{Name: "Tide Runners"}, nil)

	// Ownership mismatch is indistinguishable from a missing row
	assert.ErrorIs(t, err, product.ErrProductNotFound)
	repo.AssertNotCalled(t, "UpdateTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_EmptyGenreListClearsAll(t *testing.T) {
	repo := new(mockProductRepo)
	svc := newTestService(repo, new(mockUploader))

	publisherID := uuid.New()
	productID := uuid.New()
	existing := &product.Product{
		ID:          productID,
		PublisherID: publisherID,
		Name:        "Tide Runners",
		Genres:      []string{"Strategy", "Family"},
	}

	repo.On("FindByID", mock.Anything, productID).Return(existing, nil)
	repo.On("UpdateTx", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("ReplaceGenresTx", mock.Anything, mock.Anything, productID, []string{}).Return(nil)

	_, err := svc.Update(context.Background(), publisherID, productID, product.ProductForm{
		Name:   "Tide Runners",
		Genres: nil,
	}, nil)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_NoFileKeepsImage(t *testing.T) {
	repo := new(mockProductRepo)
	uploads := new(mockUploader)
	svc := newTestService(repo, uploads)

	publisherID := uuid.New()
	productID := uuid.New()
	imageURL := "http://localhost:9000/gama-uploads/products/abc_box.png"
	existing := &product.Product{
		ID:          productID,
		PublisherID: publisherID,
		Name:        "Tide Runners",
		ImageURL:    strPtr(imageURL),
	}

	repo.On("FindByID", mock.Anything, productID).Return(existing, nil)
	repo.On("UpdateTx", mock.Anything, mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
		return p.ImageURL != nil && *p.ImageURL == imageURL
	})).Return(nil)
	repo.On("ReplaceGenresTx", mock.Anything, mock.Anything, productID, mock.Anything).Return(nil)

	_, err := svc.Update(context.Background(), publisherID, productID, product.ProductForm{
		Name: "Tide Runners",
	}, nil)

	require.NoError(t, err)
	uploads.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

// ========================================
// PUBLIC LISTING
// ========================================

func TestListPublic_FiltersNameAndDescription(t *testing.T) {
	repo := new(mockProductRepo)
	svc := newTestService(repo, new(mockUploader))

	catalog := []product.Product{
		{Name: "Cavern Crawl"},
		{Name: "Harvest Moon", Description: strPtr("A cooperative CAVERN romp")},
		{Name: "Skyline"},
	}
	repo.On("ListAvailable", mock.Anything).Return(catalog, nil)

	got, err := svc.ListPublic(context.Background(), "  cavern ")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Cavern Crawl", got[0].Name)
	assert.Equal(t, "Harvest Moon", got[1].Name)
}

func TestListPublic_EmptyQueryReturnsAll(t *testing.T) {
	repo := new(mockProductRepo)
	svc := newTestService(repo, new(mockUploader))

	catalog := []product.Product{{Name: "A"}, {Name: "B"}}
	repo.On("ListAvailable", mock.Anything).Return(catalog, nil)

	got, err := svc.ListPublic(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
