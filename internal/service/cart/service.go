package cart

import (
	"context"
	"fmt"
	"strings"

	"forever-commerce/internal/domain"
)

// Service owns cart reconciliation: locating, merging, updating and
// removing lines within a user's cart. Line prices are the values
// asserted by the client at add time; the service does not cross-check
// them against the live catalog.
type Service struct {
	repo  cartRepo
	users userRepo
}

type cartRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	UpsertLine(ctx context.Context, userID string, line domain.CartLine) error
	SetQuantity(ctx context.Context, userID, productID, selectedSize string, quantity int) error
	DeleteLine(ctx context.Context, userID, productID, selectedSize string) error
}

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

func New(repo cartRepo, users userRepo) *Service {
	return &Service{repo: repo, users: users}
}

// AddInput carries the client-asserted add-to-cart payload. Price is a
// pointer so a missing price can be told apart from an explicit zero.
type AddInput struct {
	ProductID    string   `json:"productId"`
	Quantity     int      `json:"quantity"`
	SelectedSize string   `json:"selectedSize"`
	Price        *float64 `json:"price"`
}

// Fetch returns the user's cart with every line's product expanded.
func (s *Service) Fetch(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

// Add merges the line into the cart: an existing (productId, selectedSize)
// slot accumulates quantity, otherwise a new line is appended carrying the
// given price as its permanent snapshot.
func (s *Service) Add(ctx context.Context, userID string, in AddInput) ([]domain.CartItem, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, fmt.Errorf("%w: productId required", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if in.Price == nil {
		return nil, fmt.Errorf("%w: price required", domain.ErrInvalidInput)
	}

	line := domain.CartLine{
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		SelectedSize: domain.NormalizeSize(in.SelectedSize),
		Price:        *in.Price,
	}
	if err := s.repo.UpsertLine(ctx, userID, line); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

// UpdateQuantity replaces the quantity of an existing line. It never
// creates one: a missing (productId, selectedSize) slot is ErrNotFound.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID string, quantity int, selectedSize string) ([]domain.CartItem, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: productId required", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if err := s.repo.SetQuantity(ctx, userID, productID, selectedSize, quantity); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

// Remove deletes the exact (productId, selectedSize) line. A size
// mismatch removes nothing and is ErrNotFound.
func (s *Service) Remove(ctx context.Context, userID, productID, selectedSize string) ([]domain.CartItem, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: productId required", domain.ErrInvalidInput)
	}
	if err := s.repo.DeleteLine(ctx, userID, productID, selectedSize); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) requireUser(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.ErrUnauthorized
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return nil
}
