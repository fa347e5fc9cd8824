package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront/internal/catalog"
	"github.com/novamart/storefront/internal/domain"
)

func TestMemorySourceProduct(t *testing.T) {
	source := catalog.NewSeededSource()

	tests := []struct {
		name      string
		id        string
		wantErr   error
		wantError string
	}{
		{
			name: "existing product: ok",
			id:   "1",
		},
		{
			name:    "unknown product: not found",
			id:      "999",
			wantErr: domain.ErrProductNotFound,
		},
		{
			name:      "empty id: error",
			id:        "",
			wantError: "product id is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()

			product, err := source.Product(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, product.ID)
		})
	}
}

// The seed catalog must satisfy the reference-data invariants the rest of
// the storefront relies on.
func TestSeededSourceIntegrity(t *testing.T) {
	ctx := t.Context()
	source := catalog.NewSeededSource()

	products, err := source.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 20)

	categories, err := source.Categories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	categoryIDs := map[string]bool{}
	for _, c := range categories {
		categoryIDs[c.ID] = true
	}

	seen := map[string]bool{}
	for _, p := range products {
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true

		assert.False(t, p.Price.Amount.IsNegative(), "product %s has negative price", p.ID)
		assert.True(t, categoryIDs[p.CategoryID], "product %s references unknown category %s", p.ID, p.CategoryID)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.Stock, 0)

		for _, r := range p.Reviews {
			assert.GreaterOrEqual(t, r.Rating, 0.0)
			assert.LessOrEqual(t, r.Rating, 5.0)
			assert.False(t, r.Date.IsZero())
		}
	}
}
