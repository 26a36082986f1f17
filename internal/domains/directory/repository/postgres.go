package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/directory"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) directory.Repository {
	return &postgresRepository{pool: pool}
}

const listingSelect = `
	SELECT pub.id, pub.company_name, pub.description, pub.website, pub.logo_url,
	       u.name, u.email
	FROM publisher_profiles pub
	JOIN users u ON u.id = pub.user_id
`

// directoryProductSelect keeps only products worth browsing: available
// and carrying an image.
const directoryProductSelect = `
	SELECT
		p.id, p.publisher_id, p.name, p.description, p.image_url, p.info_url,
		p.min_players, p.max_players, p.play_time, p.age_range, p.is_available,
		p.created_at, p.updated_at,
		COALESCE(
			(SELECT array_agg(g.name ORDER BY g.name)
			 FROM product_genres pg
			 JOIN genres g ON g.id = pg.genre_id
			 WHERE pg.product_id = p.id),
			'{}'
		) AS genres
	FROM products p
	WHERE p.is_available = true AND p.image_url IS NOT NULL
`

func (r *postgresRepository) ListPublishers(ctx context.Context) ([]directory.Listing, error) {
	rows, err := r.pool.Query(ctx, listingSelect+` ORDER BY pub.company_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}
	defer rows.Close()

	listings := make([]directory.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan publisher listing: %w", err)
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One products query for the whole page, grouped in memory
	byPublisher, err := r.loadProducts(ctx, directoryProductSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}

	for i := range listings {
		if products, ok := byPublisher[listings[i].ID]; ok {
			listings[i].Products = products
		}
	}

	return listings, nil
}

func (r *postgresRepository) FindPublisher(ctx context.Context, id uuid.UUID) (*directory.Listing, error) {
	l, err := scanListing(r.pool.QueryRow(ctx, listingSelect+` WHERE pub.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, directory.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("find publisher listing: %w", err)
	}

	byPublisher, err := r.loadProducts(ctx,
		directoryProductSelect+` AND p.publisher_id = $1 ORDER BY p.created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	if products, ok := byPublisher[l.ID]; ok {
		l.Products = products
	}

	return l, nil
}

func scanListing(row pgx.Row) (*directory.Listing, error) {
	var l directory.Listing
	err := row.Scan(
		&l.ID,
		&l.CompanyName,
		&l.Description,
		&l.Website,
		&l.LogoURL,
		&l.ContactName,
		&l.ContactEmail,
	)
	if err != nil {
		return nil, err
	}

	l.Products = []product.Product{}
	return &l, nil
}

func (r *postgresRepository) loadProducts(ctx context.Context, query string, args ...any) (map[uuid.UUID][]product.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list directory products: %w", err)
	}
	defer rows.Close()

	byPublisher := make(map[uuid.UUID][]product.Product)
	for rows.Next() {
		var p product.Product
		err := rows.Scan(
			&p.ID,
			&p.PublisherID,
			&p.Name,
			&p.Description,
			&p.ImageURL,
			&p.InfoURL,
			&p.MinPlayers,
			&p.MaxPlayers,
			&p.PlayTime,
			&p.AgeRange,
			&p.IsAvailable,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.Genres,
		)
		if err != nil {
			return nil, fmt.Errorf("scan directory product: %w", err)
		}
		if p.Genres == nil {
			p.Genres = []string{}
		}
		byPublisher[p.PublisherID] = append(byPublisher[p.PublisherID], p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return byPublisher, nil
}
