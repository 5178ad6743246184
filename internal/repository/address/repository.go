package address

import (
	"context"

	"forever-commerce/internal/domain"
)

// Repository is insert-only: checkout stores a fresh address per order
// and nothing ever mutates one afterwards.
type Repository interface {
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
	GetByID(ctx context.Context, id string) (*domain.Address, error)
}
