package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/request"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) request.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, req *request.Request) error {
	query := `
		INSERT INTO requests (
			id, product_id, status,
			organization_name, organization_type,
			contact_name, contact_email, contact_phone,
			shipping_address, shipping_city, shipping_state, shipping_zip, shipping_country,
			event_date, expected_attendees, message,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.ProductID,
		req.Status,
		req.OrganizationName,
		req.OrganizationType,
		req.ContactName,
		req.ContactEmail,
		req.ContactPhone,
		req.ShippingAddress,
		req.ShippingCity,
		req.ShippingState,
		req.ShippingZip,
		req.ShippingCountry,
		req.EventDate,
		req.ExpectedAttendees,
		req.Message,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}

	return nil
}

const requestSelect = `
	SELECT
		r.id, r.product_id, r.status,
		r.organization_name, r.organization_type,
		r.contact_name, r.contact_email, r.contact_phone,
		r.shipping_address, r.shipping_city, r.shipping_state, r.shipping_zip, r.shipping_country,
		r.event_date, r.expected_attendees, r.message,
		r.created_at, r.updated_at,
		p.publisher_id, p.name, p.description, p.image_url, p.is_available,
		pub.company_name, pub.logo_url,
		COALESCE(
			(SELECT array_agg(g.name ORDER BY g.name)
			 FROM product_genres pg
			 JOIN genres g ON g.id = pg.genre_id
			 WHERE pg.product_id = p.id),
			'{}'
		) AS genres
	FROM requests r
	JOIN products p ON p.id = r.product_id
	JOIN publisher_profiles pub ON pub.id = p.publisher_id
`

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	query := requestSelect + ` WHERE r.id = $1`

	req, err := scanRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, request.ErrRequestNotFound
		}
		return nil, err
	}

	return req, nil
}

func (r *postgresRepository) ListByPublisher(ctx context.Context, publisherID uuid.UUID) ([]request.Request, error) {
	query := requestSelect + ` WHERE p.publisher_id = $1 ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, query, publisherID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	requests := make([]request.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, *req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status request.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE requests SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}

func scanRequest(row pgx.Row) (*request.Request, error) {
	var req request.Request
	var p product.Product
	var companyName string
	var logoURL *string

	err := row.Scan(
		&req.ID,
		&req.ProductID,
		&req.Status,
		&req.OrganizationName,
		&req.OrganizationType,
		&req.ContactName,
		&req.ContactEmail,
		&req.ContactPhone,
		&req.ShippingAddress,
		&req.ShippingCity,
		&req.ShippingState,
		&req.ShippingZip,
		&req.ShippingCountry,
		&req.EventDate,
		&req.ExpectedAttendees,
		&req.Message,
		&req.CreatedAt,
		&req.UpdatedAt,
		&p.PublisherID,
		&p.Name,
		&p.Description,
		&p.ImageURL,
		&p.IsAvailable,
		&companyName,
		&logoURL,
		&p.Genres,
	)
	if err != nil {
		return nil, err
	}

	p.ID = req.ProductID
	p.Publisher = &product.PublisherSummary{
		ID:          p.PublisherID,
		CompanyName: companyName,
		LogoURL:     logoURL,
	}
	if p.Genres == nil {
		p.Genres = []string{}
	}
	req.Product = &p

	return &req, nil
}
