package cart

import (
	"context"
	"sync"

	"forever-commerce/internal/domain"
)

// MemoryRepo is an in-memory Repository used by tests and local tooling.
// It implements the same merge contract as the Postgres repository via
// the domain helpers.
type MemoryRepo struct {
	mu       sync.Mutex
	lines    map[string][]domain.CartLine
	products map[string]domain.Product
}

func NewMemory() *MemoryRepo {
	return &MemoryRepo{
		lines:    make(map[string][]domain.CartLine),
		products: make(map[string]domain.Product),
	}
}

// PutProduct registers a product so ListByUser can expand lines.
func (r *MemoryRepo) PutProduct(p domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
}

// DropProduct simulates a catalog deletion; existing lines keep dangling.
func (r *MemoryRepo) DropProduct(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
}

func (r *MemoryRepo) ListByUser(_ context.Context, userID string) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []domain.CartItem{}
	for _, l := range r.lines[userID] {
		item := domain.CartItem{CartLine: l}
		if p, ok := r.products[l.ProductID]; ok {
			prod := p
			item.Product = &prod
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *MemoryRepo) UpsertLine(_ context.Context, userID string, line domain.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[userID] = domain.MergeLine(r.lines[userID], line)
	return nil
}

func (r *MemoryRepo) SetQuantity(_ context.Context, userID, productID, selectedSize string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !domain.SetLineQuantity(r.lines[userID], productID, selectedSize, quantity) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MemoryRepo) DeleteLine(_ context.Context, userID, productID, selectedSize string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out, removed := domain.RemoveLine(r.lines[userID], productID, selectedSize)
	if !removed {
		return domain.ErrNotFound
	}
	r.lines[userID] = out
	return nil
}
