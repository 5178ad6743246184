package order

import (
	"context"
	"errors"
	"testing"

	"forever-commerce/internal/domain"
	orderrepo "forever-commerce/internal/repository/order"
)

type stubOrderRepo struct {
	createID   string
	createErr  error
	lastCreate orderrepo.CreateOrderInput
	orders     []domain.Order
	listErr    error
}

func (s *stubOrderRepo) Create(_ context.Context, in orderrepo.CreateOrderInput) (string, error) {
	s.lastCreate = in
	return s.createID, s.createErr
}

func (s *stubOrderRepo) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.listErr
}

type stubAddressRepo struct {
	created *domain.Address
	err     error
	calls   int
}

func (s *stubAddressRepo) Create(_ context.Context, a domain.Address) (*domain.Address, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := a
	out.ID = s.created.ID
	return &out, nil
}

type stubProductRepo struct {
	products map[string]*domain.Product
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func validInput() PlaceInput {
	return PlaceInput{
		Items:         []ItemInput{{ProductID: "p1", Quantity: 3, SelectedSize: "M", Price: 10}},
		TotalAmount:   30.6,
		PaymentMethod: domain.PaymentCOD,
		Address: AddressInput{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			AddressLine1: "1 Main St",
			City:         "London",
			State:        "LDN",
			Country:      "UK",
			ZipCode:      "E1",
			PhoneNumber:  "555-0001",
		},
	}
}

func newService(orders *stubOrderRepo, addresses *stubAddressRepo) *Service {
	return New(orders, addresses, &stubProductRepo{products: map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Forever Tee", Images: []string{"https://img/p1.jpg"}},
	}})
}

func TestPlaceOrderRequiresIdentity(t *testing.T) {
	svc := newService(&stubOrderRepo{}, &stubAddressRepo{created: &domain.Address{ID: "a1"}})
	_, err := svc.PlaceOrder(context.Background(), "", validInput())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	addresses := &stubAddressRepo{created: &domain.Address{ID: "a1"}}
	svc := newService(&stubOrderRepo{}, addresses)

	in := validInput()
	in.PaymentMethod = "PayPal"
	if _, err := svc.PlaceOrder(context.Background(), "u1", in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for payment method, got %v", err)
	}

	in = validInput()
	in.Items = nil
	if _, err := svc.PlaceOrder(context.Background(), "u1", in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty items, got %v", err)
	}

	in = validInput()
	in.Items[0].Quantity = 0
	if _, err := svc.PlaceOrder(context.Background(), "u1", in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero quantity, got %v", err)
	}

	if addresses.calls != 0 {
		t.Fatal("validation failures must not write an address")
	}
}

func TestPlaceOrderCopiesItemsVerbatim(t *testing.T) {
	orders := &stubOrderRepo{createID: "o1"}
	addresses := &stubAddressRepo{created: &domain.Address{ID: "a1"}}
	svc := newService(orders, addresses)

	id, err := svc.PlaceOrder(context.Background(), "u1", validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "o1" {
		t.Fatalf("expected order id o1, got %s", id)
	}
	if orders.lastCreate.AddressID != "a1" {
		t.Fatalf("expected order to reference the fresh address, got %+v", orders.lastCreate)
	}
	if orders.lastCreate.TotalAmount != 30.6 {
		t.Fatalf("client-asserted total must be stored verbatim, got %v", orders.lastCreate.TotalAmount)
	}
	if len(orders.lastCreate.Lines) != 1 {
		t.Fatalf("expected one line, got %+v", orders.lastCreate.Lines)
	}
	line := orders.lastCreate.Lines[0]
	if line.ProductID != "p1" || line.Quantity != 3 || line.SelectedSize != "M" || line.Price != 10 {
		t.Fatalf("line must copy the submitted item, got %+v", line)
	}
	if line.Snapshot["name"] != "Forever Tee" || line.Snapshot["image"] != "https://img/p1.jpg" {
		t.Fatalf("expected product snapshot on the line, got %+v", line.Snapshot)
	}
}

func TestPlaceOrderSnapshotsNothingForDeletedProduct(t *testing.T) {
	orders := &stubOrderRepo{createID: "o1"}
	addresses := &stubAddressRepo{created: &domain.Address{ID: "a1"}}
	svc := New(orders, addresses, &stubProductRepo{products: map[string]*domain.Product{}})

	if _, err := svc.PlaceOrder(context.Background(), "u1", validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders.lastCreate.Lines[0].Snapshot != nil {
		t.Fatalf("expected nil snapshot for missing product, got %+v", orders.lastCreate.Lines[0].Snapshot)
	}
}

func TestPlaceOrderAddressFailure(t *testing.T) {
	svc := newService(&stubOrderRepo{}, &stubAddressRepo{created: &domain.Address{ID: "a1"}, err: errors.New("boom")})
	_, err := svc.PlaceOrder(context.Background(), "u1", validInput())
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected address error surfaced, got %v", err)
	}
}

func TestListOrdersRequiresIdentity(t *testing.T) {
	svc := newService(&stubOrderRepo{}, &stubAddressRepo{created: &domain.Address{ID: "a1"}})
	_, err := svc.ListOrders(context.Background(), "")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestListOrders(t *testing.T) {
	orders := &stubOrderRepo{orders: []domain.Order{{ID: "o1", UserID: "u1"}}}
	svc := newService(orders, &stubAddressRepo{created: &domain.Address{ID: "a1"}})
	got, err := svc.ListOrders(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "o1" {
		t.Fatalf("unexpected orders %+v", got)
	}
}
