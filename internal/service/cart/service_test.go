package cart

import (
	"context"
	"errors"
	"testing"

	"forever-commerce/internal/domain"
	cartrepo "forever-commerce/internal/repository/cart"
)

type stubUsers struct {
	user *domain.User
	err  error
}

func (s *stubUsers) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

type stubCartRepo struct {
	items         []domain.CartItem
	listErr       error
	upsertErr     error
	setErr        error
	deleteErr     error
	lastUpsert    domain.CartLine
	lastSetQty    int
	lastSetSize   string
	lastDeleteKey [2]string
}

func (s *stubCartRepo) ListByUser(_ context.Context, _ string) ([]domain.CartItem, error) {
	return s.items, s.listErr
}

func (s *stubCartRepo) UpsertLine(_ context.Context, _ string, line domain.CartLine) error {
	s.lastUpsert = line
	return s.upsertErr
}

func (s *stubCartRepo) SetQuantity(_ context.Context, _, productID, selectedSize string, quantity int) error {
	s.lastSetQty = quantity
	s.lastSetSize = selectedSize
	return s.setErr
}

func (s *stubCartRepo) DeleteLine(_ context.Context, _, productID, selectedSize string) error {
	s.lastDeleteKey = [2]string{productID, selectedSize}
	return s.deleteErr
}

func validUsers() *stubUsers {
	return &stubUsers{user: &domain.User{ID: "u1", Email: "u@example.com"}}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestFetchRequiresIdentity(t *testing.T) {
	svc := New(&stubCartRepo{}, validUsers())
	_, err := svc.Fetch(context.Background(), "  ")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestFetchUnknownUser(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubUsers{err: domain.ErrNotFound})
	_, err := svc.Fetch(context.Background(), "u1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddValidation(t *testing.T) {
	svc := New(&stubCartRepo{}, validUsers())
	cases := []struct {
		name string
		in   AddInput
	}{
		{"missing product", AddInput{Quantity: 1, Price: floatPtr(10)}},
		{"zero quantity", AddInput{ProductID: "p1", Quantity: 0, Price: floatPtr(10)}},
		{"negative quantity", AddInput{ProductID: "p1", Quantity: -2, Price: floatPtr(10)}},
		{"missing price", AddInput{ProductID: "p1", Quantity: 1}},
	}
	for _, tc := range cases {
		if _, err := svc.Add(context.Background(), "u1", tc.in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestAddUpsertsAndReturnsExpandedCart(t *testing.T) {
	repo := &stubCartRepo{items: []domain.CartItem{{
		CartLine: domain.CartLine{ProductID: "p1", Quantity: 3, SelectedSize: "M", Price: 10},
		Product:  &domain.Product{ID: "p1", Name: "Tee"},
	}}}
	svc := New(repo, validUsers())

	items, err := svc.Add(context.Background(), "u1", AddInput{ProductID: "p1", Quantity: 1, SelectedSize: " M ", Price: floatPtr(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpsert.SelectedSize != "M" {
		t.Fatalf("expected normalized size, got %q", repo.lastUpsert.SelectedSize)
	}
	if repo.lastUpsert.Price != 10 {
		t.Fatalf("expected asserted price carried to repo, got %v", repo.lastUpsert.Price)
	}
	if len(items) != 1 || items[0].Product == nil {
		t.Fatalf("expected expanded cart back, got %+v", items)
	}
}

func TestUpdateQuantityRejectsNonPositive(t *testing.T) {
	repo := &stubCartRepo{}
	svc := New(repo, validUsers())
	_, err := svc.UpdateQuantity(context.Background(), "u1", "p1", 0, "M")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.lastSetQty != 0 {
		t.Fatal("no write must happen on validation failure")
	}
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	svc := New(&stubCartRepo{setErr: domain.ErrNotFound}, validUsers())
	_, err := svc.UpdateQuantity(context.Background(), "u1", "p1", 2, "M")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveMissingLine(t *testing.T) {
	svc := New(&stubCartRepo{deleteErr: domain.ErrNotFound}, validUsers())
	_, err := svc.Remove(context.Background(), "u1", "p1", "M")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// End-to-end over the in-memory repository: repeated adds merge into one
// line per (productId, selectedSize) slot and keep the first price.
func TestAddMergesAgainstMemoryRepo(t *testing.T) {
	repo := cartrepo.NewMemory()
	repo.PutProduct(domain.Product{ID: "p1", Name: "Tee", Price: 12})
	svc := New(repo, validUsers())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "u1", AddInput{ProductID: "p1", Quantity: 2, SelectedSize: "M", Price: floatPtr(10)}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	items, err := svc.Add(ctx, "u1", AddInput{ProductID: "p1", Quantity: 1, SelectedSize: "M", Price: floatPtr(12)})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected single merged line, got %+v", items)
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
	if items[0].Price != 10 {
		t.Fatalf("expected first-add price snapshot, got %v", items[0].Price)
	}

	items, err = svc.Add(ctx, "u1", AddInput{ProductID: "p1", Quantity: 1, Price: floatPtr(10)})
	if err != nil {
		t.Fatalf("sizeless add: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("sizeless add must occupy its own slot, got %+v", items)
	}
}
