package address

import (
	"context"
	"errors"
	"io"
	"log"

	"forever-commerce/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
INSERT INTO addresses (user_id, first_name, last_name, address_line1, address_line2, city, state, country, zip_code, phone_number, is_default)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)
RETURNING id::text, user_id::text, first_name, last_name, address_line1, COALESCE(address_line2, ''), city, state, country, zip_code, phone_number, is_default, created_at
`
	created, err := scanAddress(r.pool.QueryRow(ctx, q,
		a.UserID,
		a.FirstName,
		a.LastName,
		a.AddressLine1,
		a.AddressLine2,
		a.City,
		a.State,
		a.Country,
		a.ZipCode,
		a.PhoneNumber,
		a.IsDefault,
	))
	if err != nil {
		r.logger.Printf("address repo: create user_id=%s error=%v", a.UserID, err)
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	const q = `
SELECT id::text, user_id::text, first_name, last_name, address_line1, COALESCE(address_line2, ''), city, state, country, zip_code, phone_number, is_default, created_at
FROM addresses
WHERE id = $1
`
	a, err := scanAddress(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("address repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return a, nil
}

func scanAddress(row pgx.Row) (*domain.Address, error) {
	var a domain.Address
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.FirstName,
		&a.LastName,
		&a.AddressLine1,
		&a.AddressLine2,
		&a.City,
		&a.State,
		&a.Country,
		&a.ZipCode,
		&a.PhoneNumber,
		&a.IsDefault,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
