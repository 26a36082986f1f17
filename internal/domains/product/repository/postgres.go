package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) product.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CreateTx(ctx context.Context, tx pgx.Tx, p *product.Product) error {
	query := `
		INSERT INTO products (
			id, publisher_id, name, description, image_url, info_url,
			min_players, max_players, play_time, age_range, is_available,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := tx.Exec(ctx, query,
		p.ID,
		p.PublisherID,
		p.Name,
		p.Description,
		p.ImageURL,
		p.InfoURL,
		p.MinPlayers,
		p.MaxPlayers,
		p.PlayTime,
		p.AgeRange,
		p.IsAvailable,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

func (r *postgresRepository) UpdateTx(ctx context.Context, tx pgx.Tx, p *product.Product) error {
	query := `
		UPDATE products SET
			name = $1, description = $2, image_url = $3, info_url = $4,
			min_players = $5, max_players = $6, play_time = $7, age_range = $8,
			is_available = $9, updated_at = $10
		WHERE id = $11
	`

	tag, err := tx.Exec(ctx, query,
		p.Name,
		p.Description,
		p.ImageURL,
		p.InfoURL,
		p.MinPlayers,
		p.MaxPlayers,
		p.PlayTime,
		p.AgeRange,
		p.IsAvailable,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// ReplaceGenresTx is a bulk replace-set: wipe, upsert genres by name,
// re-insert associations. Genre rows themselves are never deleted.
func (r *postgresRepository) ReplaceGenresTx(ctx context.Context, tx pgx.Tx, productID uuid.UUID, names []string) error {
	if _, err := tx.Exec(ctx,
		`DELETE FROM product_genres WHERE product_id = $1`, productID,
	); err != nil {
		return fmt.Errorf("clear product genres: %w", err)
	}

	for _, name := range names {
		// Upsert-by-unique-name. The no-op DO UPDATE makes RETURNING
		// yield the id for the existing row as well.
		var genreID uuid.UUID
		err := tx.QueryRow(ctx, `
			INSERT INTO genres (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, uuid.New(), name).Scan(&genreID)
		if err != nil {
			return fmt.Errorf("upsert genre %q: %w", name, err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO product_genres (product_id, genre_id)
			VALUES ($1, $2)
		`, productID, genreID); err != nil {
			return fmt.Errorf("link genre %q: %w", name, err)
		}
	}

	return nil
}

const productSelect = `
	SELECT
		p.id, p.publisher_id, p.name, p.description, p.image_url, p.info_url,
		p.min_players, p.max_players, p.play_time, p.age_range, p.is_available,
		p.created_at, p.updated_at,
		pub.company_name, pub.logo_url,
		COALESCE(
			(SELECT array_agg(g.name ORDER BY g.name)
			 FROM product_genres pg
			 JOIN genres g ON g.id = pg.genre_id
			 WHERE pg.product_id = p.id),
			'{}'
		) AS genres,
		(SELECT COUNT(*) FROM requests req WHERE req.product_id = p.id) AS request_count
	FROM products p
	JOIN publisher_profiles pub ON pub.id = p.publisher_id
`

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := productSelect + ` WHERE p.id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *postgresRepository) ListAvailable(ctx context.Context) ([]product.Product, error) {
	query := productSelect + ` WHERE p.is_available = true ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list available products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *postgresRepository) ListByPublisher(ctx context.Context, publisherID uuid.UUID) ([]product.Product, error) {
	query := productSelect + ` WHERE p.publisher_id = $1 ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query, publisherID)
	if err != nil {
		return nil, fmt.Errorf("list publisher products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var companyName string
	var logoURL *string

	err := row.Scan(
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
		&companyName,
		&logoURL,
		&p.Genres,
		&p.RequestCount,
	)
	if err != nil {
		return nil, err
	}

	p.Publisher = &product.PublisherSummary{
		ID:          p.PublisherID,
		CompanyName: companyName,
		LogoURL:     logoURL,
	}

	if p.Genres == nil {
		p.Genres = []string{}
	}

	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]product.Product, error) {
	products := make([]product.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
