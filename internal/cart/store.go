package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/novamart/storefront/internal/domain"
	"github.com/novamart/storefront/internal/port"
)

// store is the process-wide, session-lived cart. It is guarded by a mutex
// because the HTTP surface serves requests concurrently even though the
// logical model is a single shopping session.
type store struct {
	mu     sync.Mutex
	policy domain.LineKeyPolicy
	items  []domain.CartItem
}

func New(policy domain.LineKeyPolicy) port.CartStore {
	return &store{policy: policy}
}

func (s *store) AddItem(ctx context.Context, product domain.Product, quantity int, selected map[string]string) error {
	if product.ID == "" {
		return fmt.Errorf("product id is empty")
	}

	// Out-of-stock products never produce a line: a quantity of at least 1
	// cannot hold together with the stock ceiling.
	if product.Stock < 1 {
		return nil
	}

	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.policy.KeyOf(product.ID, selected)
	for i, item := range s.items {
		if s.policy.Key(item) != key {
			continue
		}

		// Merging keeps the existing line's variant selection.
		s.items[i].Quantity = min(item.Quantity+quantity, product.Stock)
		return nil
	}

	s.items = append(s.items, domain.CartItem{
		Product:          product,
		Quantity:         min(quantity, product.Stock),
		SelectedVariants: cloneVariants(selected),
		AddedAt:          time.Now(),
	})
	return nil
}

func (s *store) RemoveItem(ctx context.Context, productID string) (bool, error) {
	if productID == "" {
		return false, fmt.Errorf("product id is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(productID), nil
}

func (s *store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if productID == "" {
		return fmt.Errorf("product id is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		s.removeLocked(productID)
		return nil
	}

	// Unknown product ids are ignored, not an error.
	for i, item := range s.items {
		if item.Product.ID == productID {
			s.items[i].Quantity = min(quantity, item.Product.Stock)
			return nil
		}
	}
	return nil
}

func (s *store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return nil
}

func (s *store) Cart(ctx context.Context) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	for i, item := range s.items {
		item.SelectedVariants = cloneVariants(item.SelectedVariants)
		items[i] = item
	}

	return domain.Cart{Items: items}, nil
}

// removeLocked drops every line for the product id. Under the
// product+variants policy one product can span several lines; removal by
// product id clears them all.
func (s *store) removeLocked(productID string) bool {
	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.Product.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return removed
}

func cloneVariants(selected map[string]string) map[string]string {
	if selected == nil {
		return nil
	}

	clone := make(map[string]string, len(selected))
	for k, v := range selected {
		clone[k] = v
	}
	return clone
}
