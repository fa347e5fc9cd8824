package port

import (
	"context"

	"github.com/novamart/storefront/internal/domain"
)

// CartStore tracks the contents of the active shopping session's cart.
// Quantity requests are clamped, never rejected: adding beyond stock caps
// the line at stock, and updating a quantity below 1 removes the line.
type CartStore interface {
	AddItem(ctx context.Context, product domain.Product, quantity int, selected map[string]string) error
	RemoveItem(ctx context.Context, productID string) (bool, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	Clear(ctx context.Context) error
	Cart(ctx context.Context) (domain.Cart, error)
}
