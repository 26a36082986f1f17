package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
	"github.com/spycraft69/GAMA-Product-Request/internal/infrastructure/storage"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared/utils"
	"github.com/spycraft69/GAMA-Product-Request/pkg/database"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// ObjectUploader is the slice of the storage client the catalog needs
type ObjectUploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// catalogImageDim caps box art at a web-friendly size
const catalogImageDim = 1600

// productService implements product.Service
type productService struct {
	repo    product.Repository
	tx      database.TxRunner
	uploads ObjectUploader
	images  *storage.ImageProcessor
}

func NewProductService(
	repo product.Repository,
	tx database.TxRunner,
	uploads ObjectUploader,
	images *storage.ImageProcessor,
) product.Service {
	return &productService{
		repo:    repo,
		tx:      tx,
		uploads: uploads,
		images:  images,
	}
}

// Create stores the image first, outside the transaction. An orphaned
// object on a failed insert is cheaper than a product row pointing at
// an image that never landed.
func (s *productService) Create(ctx context.Context, publisherID uuid.UUID, form product.ProductForm, image *product.UploadedImage) (*product.Product, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, product.ErrNameRequired
	}

	genres := utils.CleanGenreNames(form.Genres)

	now := time.Now()
	p := &product.Product{
		ID:          uuid.New(),
		PublisherID: publisherID,
		Name:        name,
		Description: utils.TrimToNil(form.Description),
		InfoURL:     utils.TrimToNil(form.InfoURL),
		MinPlayers:  utils.ParseOptionalInt(form.MinPlayers),
		MaxPlayers:  utils.ParseOptionalInt(form.MaxPlayers),
		PlayTime:    utils.TrimToNil(form.PlayTime),
		AgeRange:    utils.TrimToNil(form.AgeRange),
		IsAvailable: form.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if image != nil {
		url, err := s.storeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		p.ImageURL = &url
	}

	err := s.tx.RunTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.CreateTx(ctx, tx, p); err != nil {
			return err
		}
		return s.repo.ReplaceGenresTx(ctx, tx, p.ID, genres)
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	logger.Info("Product created", map[string]interface{}{
		"productId":   p.ID.String(),
		"publisherId": publisherID.String(),
	})

	// Reload to attach publisher summary and genres
	return s.repo.FindByID(ctx, p.ID)
}

// Update rewrites every editable field and replaces the genre set with
// exactly what the form carries. Submitting no genres clears them all.
func (s *productService) Update(ctx context.Context, publisherID, productID uuid.UUID, form product.ProductForm, image *product.UploadedImage) (*product.Product, error) {
	existing, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Someone else's product looks identical to a missing one
	if existing.PublisherID != publisherID {
		return nil, product.ErrProductNotFound
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, product.ErrNameRequired
	}

	genres := utils.CleanGenreNames(form.Genres)

	updated := &product.Product{
		ID:          existing.ID,
		PublisherID: existing.PublisherID,
		Name:        name,
		Description: utils.TrimToNil(form.Description),
		ImageURL:    existing.ImageURL,
		InfoURL:     utils.TrimToNil(form.InfoURL),
		MinPlayers:  utils.ParseOptionalInt(form.MinPlayers),
		MaxPlayers:  utils.ParseOptionalInt(form.MaxPlayers),
		PlayTime:    utils.TrimToNil(form.PlayTime),
		AgeRange:    utils.TrimToNil(form.AgeRange),
		IsAvailable: form.IsAvailable,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	if image != nil {
		url, err := s.storeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		updated.ImageURL = &url
	}

	err = s.tx.RunTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updated); err != nil {
			return err
		}
		return s.repo.ReplaceGenresTx(ctx, tx, updated.ID, genres)
	})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return s.repo.FindByID(ctx, updated.ID)
}

// ListPublic filters in memory. The catalog is small enough that a
// LIKE-query round trip per keystroke would cost more than it saves.
func (s *productService) ListPublic(ctx context.Context, query string) ([]product.Product, error) {
	products, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products, nil
	}

	filtered := make([]product.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			filtered = append(filtered, p)
			continue
		}
		if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), query) {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

func (s *productService) ListOwned(ctx context.Context, publisherID uuid.UUID) ([]product.Product, error) {
	return s.repo.ListByPublisher(ctx, publisherID)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) storeImage(ctx context.Context, image *product.UploadedImage) (string, error) {
	if err := s.images.ValidateImage(image.Data); err != nil {
		logger.Warn("Rejected product image", map[string]interface{}{
			"fileName": image.FileName,
			"error":    err.Error(),
		})
		return "", product.ErrInvalidImage
	}

	normalized, err := s.images.Normalize(image.Data, catalogImageDim)
	if err != nil {
		return "", product.ErrInvalidImage
	}

	key := storage.ObjectKey("products", image.FileName)
	url, err := s.uploads.Upload(ctx, key, normalized, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("upload product image: %w", err)
	}

	return url, nil
}
