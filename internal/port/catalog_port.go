package port

import (
	"context"

	"github.com/novamart/storefront/internal/domain"
)

// CatalogSource supplies the immutable product and category reference data.
type CatalogSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id string) (domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}
