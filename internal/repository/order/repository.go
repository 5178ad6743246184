package order

import (
	"context"

	"forever-commerce/internal/domain"
)

// CreateOrderInput carries everything persisted at order placement. Lines
// are stored as independent copies; later cart changes never reach them.
type CreateOrderInput struct {
	UserID        string
	AddressID     string
	Lines         []domain.OrderLine
	TotalAmount   float64
	PaymentMethod string
}

type Repository interface {
	// Create persists the order and its lines in one transaction and
	// returns the new order id.
	Create(ctx context.Context, in CreateOrderInput) (string, error)
	// ListByUser returns the user's orders with line products and the
	// shipping address expanded, in natural storage order.
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
