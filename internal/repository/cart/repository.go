package cart

import (
	"context"

	"forever-commerce/internal/domain"
)

// Repository stores cart lines keyed by (user, product, selected size).
//
// UpsertLine must be atomic: when the slot already exists the quantity is
// incremented by the given line's quantity and the stored price snapshot
// is kept; otherwise the line is inserted as given. Two concurrent adds
// against the same slot must both take effect.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	UpsertLine(ctx context.Context, userID string, line domain.CartLine) error
	SetQuantity(ctx context.Context, userID, productID, selectedSize string, quantity int) error
	DeleteLine(ctx context.Context, userID, productID, selectedSize string) error
}
