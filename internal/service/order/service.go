package order

import (
	"context"
	"fmt"
	"strings"

	"forever-commerce/internal/domain"
	orderrepo "forever-commerce/internal/repository/order"
)

// Service assembles immutable orders from a client-submitted cart
// snapshot plus a shipping address. Items and totalAmount are persisted
// verbatim; the service does not revalidate them against the live cart
// or catalog prices.
type Service struct {
	orders    orderRepo
	addresses addressRepo
	products  productRepo
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type addressRepo interface {
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(orders orderRepo, addresses addressRepo, products productRepo) *Service {
	return &Service{orders: orders, addresses: addresses, products: products}
}

// ItemInput is one submitted order line, copied verbatim into the order.
type ItemInput struct {
	ProductID    string  `json:"productId"`
	Quantity     int     `json:"quantity"`
	SelectedSize string  `json:"selectedSize"`
	Price        float64 `json:"price"`
}

// AddressInput mirrors the shipping address payload submitted at checkout.
type AddressInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ZipCode      string `json:"zipCode"`
	PhoneNumber  string `json:"phoneNumber"`
	IsDefault    bool   `json:"isDefault"`
}

// PlaceInput is the full checkout payload.
type PlaceInput struct {
	Items         []ItemInput  `json:"items"`
	TotalAmount   float64      `json:"totalAmount"`
	PaymentMethod string       `json:"paymentMethod"`
	Address       AddressInput `json:"address"`
}

// PlaceOrder persists the address, then the order with deep-copied
// lines. The two writes are not transactional: a failed order insert
// leaves the address row behind. The user's cart is not cleared.
func (s *Service) PlaceOrder(ctx context.Context, userID string, in PlaceInput) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", domain.ErrUnauthorized
	}
	if !domain.ValidPaymentMethod(in.PaymentMethod) {
		return "", fmt.Errorf("%w: unsupported payment method %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	if len(in.Items) == 0 {
		return "", fmt.Errorf("%w: items required", domain.ErrInvalidInput)
	}
	for _, item := range in.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return "", fmt.Errorf("%w: item productId required", domain.ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return "", fmt.Errorf("%w: item quantity must be positive", domain.ErrInvalidInput)
		}
	}

	addr, err := s.addresses.Create(ctx, domain.Address{
		UserID:       userID,
		FirstName:    in.Address.FirstName,
		LastName:     in.Address.LastName,
		AddressLine1: in.Address.AddressLine1,
		AddressLine2: in.Address.AddressLine2,
		City:         in.Address.City,
		State:        in.Address.State,
		Country:      in.Address.Country,
		ZipCode:      in.Address.ZipCode,
		PhoneNumber:  in.Address.PhoneNumber,
		IsDefault:    in.Address.IsDefault,
	})
	if err != nil {
		return "", err
	}

	lines := make([]domain.OrderLine, 0, len(in.Items))
	for _, item := range in.Items {
		lines = append(lines, domain.OrderLine{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			SelectedSize: domain.NormalizeSize(item.SelectedSize),
			Price:        item.Price,
			Snapshot:     s.snapshotProduct(ctx, item.ProductID),
		})
	}

	return s.orders.Create(ctx, orderrepo.CreateOrderInput{
		UserID:        userID,
		AddressID:     addr.ID,
		Lines:         lines,
		TotalAmount:   in.TotalAmount,
		PaymentMethod: in.PaymentMethod,
	})
}

// ListOrders returns the user's orders with products and address expanded.
func (s *Service) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.orders.ListByUser(ctx, userID)
}

// snapshotProduct captures name and first image at placement time so the
// order line still renders if the product is later deleted. A product
// already gone just yields no snapshot.
func (s *Service) snapshotProduct(ctx context.Context, productID string) map[string]interface{} {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil
	}
	snap := map[string]interface{}{"name": p.Name}
	if len(p.Images) > 0 {
		snap["image"] = p.Images[0]
	}
	return snap
}
