package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/publisher"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) publisher.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CreateTx(ctx context.Context, tx pgx.Tx, p *publisher.Profile) error {
	query := `
		INSERT INTO publisher_profiles (
			id, user_id, company_name, description, website, logo_url,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := tx.Exec(ctx, query,
		p.ID,
		p.UserID,
		p.CompanyName,
		p.Description,
		p.Website,
		p.LogoURL,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert publisher profile: %w", err)
	}

	return nil
}

const profileSelect = `
	SELECT id, user_id, company_name, description, website, logo_url,
	       created_at, updated_at
	FROM publisher_profiles
`

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*publisher.Profile, error) {
	return r.findOne(ctx, profileSelect+` WHERE id = $1`, id)
}

func (r *postgresRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*publisher.Profile, error) {
	return r.findOne(ctx, profileSelect+` WHERE user_id = $1`, userID)
}

func (r *postgresRepository) findOne(ctx context.Context, query string, arg any) (*publisher.Profile, error) {
	var p publisher.Profile
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID,
		&p.UserID,
		&p.CompanyName,
		&p.Description,
		&p.Website,
		&p.LogoURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publisher.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find publisher profile: %w", err)
	}

	return &p, nil
}

func (r *postgresRepository) UpdateTx(ctx context.Context, tx pgx.Tx, p *publisher.Profile) error {
	query := `
		UPDATE publisher_profiles SET
			company_name = $1, description = $2, website = $3, updated_at = $4
		WHERE id = $5
	`

	tag, err := tx.Exec(ctx, query,
		p.CompanyName,
		p.Description,
		p.Website,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update publisher profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return publisher.ErrProfileNotFound
	}

	return nil
}

func (r *postgresRepository) UpdateLogoURL(ctx context.Context, id uuid.UUID, logoURL string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE publisher_profiles SET logo_url = $1, updated_at = NOW() WHERE id = $2`,
		logoURL, id,
	)
	if err != nil {
		return fmt.Errorf("update publisher logo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return publisher.ErrProfileNotFound
	}

	return nil
}
