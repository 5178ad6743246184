package user

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"forever-commerce/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (first_name, last_name, email, password_hash, provider, profile_photo, is_seller)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7)
RETURNING id::text, first_name, last_name, email, COALESCE(password_hash, ''), provider, COALESCE(profile_photo, ''), is_seller, created_at
`
	provider := u.Provider
	if provider == "" {
		provider = "local"
	}
	created, err := scanUser(r.pool.QueryRow(ctx, q,
		u.FirstName,
		u.LastName,
		strings.ToLower(u.Email),
		u.PasswordHash,
		provider,
		u.ProfilePhoto,
		u.IsSeller,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("user repo: create email=%s error=%v", u.Email, err)
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id::text, first_name, last_name, email, COALESCE(password_hash, ''), provider, COALESCE(profile_photo, ''), is_seller, created_at
FROM users
WHERE lower(email) = lower($1)
LIMIT 1
`
	u, err := scanUser(r.pool.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("user repo: get email=%s error=%v", email, err)
		return nil, err
	}
	return u, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id::text, first_name, last_name, email, COALESCE(password_hash, ''), provider, COALESCE(profile_photo, ''), is_seller, created_at
FROM users
WHERE id = $1
`
	u, err := scanUser(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("user repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return u, nil
}

func (r *postgresRepo) SetSeller(ctx context.Context, id string) (*domain.User, error) {
	const q = `
UPDATE users
SET is_seller = true
WHERE id = $1
RETURNING id::text, first_name, last_name, email, COALESCE(password_hash, ''), provider, COALESCE(profile_photo, ''), is_seller, created_at
`
	u, err := scanUser(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("user repo: set seller id=%s error=%v", id, err)
		return nil, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.Provider,
		&u.ProfilePhoto,
		&u.IsSeller,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
