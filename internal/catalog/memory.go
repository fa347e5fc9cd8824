package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/novamart/storefront/internal/domain"
	"github.com/novamart/storefront/internal/port"
)

type memorySource struct {
	products   []domain.Product
	categories []domain.Category
	byID       map[string]int
}

// NewMemorySource wraps a static product list as a catalog source. The
// data is reference-only; the source hands out copies of the slices and
// callers must not mutate the products themselves.
func NewMemorySource(products []domain.Product, categories []domain.Category) port.CatalogSource {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &memorySource{
		products:   slices.Clone(products),
		categories: slices.Clone(categories),
		byID:       byID,
	}
}

// NewSeededSource is the built-in demo catalog.
func NewSeededSource() port.CatalogSource {
	return NewMemorySource(seedProducts(), seedCategories())
}

func (s *memorySource) Products(ctx context.Context) ([]domain.Product, error) {
	return slices.Clone(s.products), nil
}

func (s *memorySource) Product(ctx context.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, fmt.Errorf("product id is empty")
	}

	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", id, domain.ErrProductNotFound)
	}

	return s.products[i], nil
}

func (s *memorySource) Categories(ctx context.Context) ([]domain.Category, error) {
	return slices.Clone(s.categories), nil
}
