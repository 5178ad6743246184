package product

import (
	"context"

	"forever-commerce/internal/domain"
)

// Repository is the catalog storage. Products are immutable once created
// except by explicit deletion.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
