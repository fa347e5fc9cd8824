package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront/internal/cart"
	"github.com/novamart/storefront/internal/catalog"
	"github.com/novamart/storefront/internal/domain"
	"github.com/novamart/storefront/internal/notify"
	"github.com/novamart/storefront/internal/service"
)

// recordingNotifier captures toast messages instead of rendering them.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func newService(t *testing.T, notifier *recordingNotifier) *service.Service {
	t.Helper()

	return service.New(
		catalog.NewSeededSource(),
		cart.New(domain.LineKeyByProduct),
		notifier,
		catalog.DefaultPageSize,
		0, // tests never wait on the cosmetic delay
	)
}

func defaultParams() *catalog.Params {
	return catalog.NewParams(decimal.Zero, decimal.NewFromInt(500))
}

func TestListProducts(t *testing.T) {
	ctx := t.Context()
	svc := newService(t, &recordingNotifier{})

	page, err := svc.ListProducts(ctx, defaultParams())
	require.NoError(t, err)

	assert.Len(t, page.Products, 8)
	assert.Equal(t, 20, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
}

func TestListProductsWithCriteria(t *testing.T) {
	ctx := t.Context()
	svc := newService(t, &recordingNotifier{})

	params := defaultParams()
	params.SetSearch("shirt")

	page, err := svc.ListProducts(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalItems)
}

func TestListProductsHonorsCosmeticDelay(t *testing.T) {
	ctx := t.Context()

	delayed := service.New(
		catalog.NewSeededSource(),
		cart.New(domain.LineKeyByProduct),
		&recordingNotifier{},
		catalog.DefaultPageSize,
		20*time.Millisecond,
	)
	instant := newService(t, &recordingNotifier{})

	slow, err := delayed.ListProducts(ctx, defaultParams())
	require.NoError(t, err)

	fast, err := instant.ListProducts(ctx, defaultParams())
	require.NoError(t, err)

	// the delay is cosmetic: results are identical with it removed
	assert.Equal(t, fast.TotalItems, slow.TotalItems)
	assert.Equal(t, len(fast.Products), len(slow.Products))
}

func TestProductDetailNotFound(t *testing.T) {
	ctx := t.Context()
	svc := newService(t, &recordingNotifier{})

	_, err := svc.ProductDetail(ctx, "does-not-exist")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFeatured(t *testing.T) {
	ctx := t.Context()
	svc := newService(t, &recordingNotifier{})

	products, err := svc.Featured(ctx)
	require.NoError(t, err)

	require.Len(t, products, 4)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "4", products[3].ID)
}

func TestAddToCartFlow(t *testing.T) {
	ctx := t.Context()
	notifier := &recordingNotifier{}
	svc := newService(t, notifier)

	view, err := svc.AddToCart(ctx, "1", 2, nil)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Count)
	assert.True(t, view.Total.Amount.Equal(decimal.RequireFromString("259.98")), "total %s", view.Total)
	require.Len(t, notifier.successes, 1)
	assert.Contains(t, notifier.successes[0], "added to cart")
}

func TestAddToCartUnknownProduct(t *testing.T) {
	ctx := t.Context()
	notifier := &recordingNotifier{}
	svc := newService(t, notifier)

	_, err := svc.AddToCart(ctx, "999", 1, nil)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.NotEmpty(t, notifier.errors)
}

func TestRemoveAndClearFlow(t *testing.T) {
	ctx := t.Context()
	notifier := &recordingNotifier{}
	svc := newService(t, notifier)

	_, err := svc.AddToCart(ctx, "1", 1, nil)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "2", 1, nil)
	require.NoError(t, err)

	view, err := svc.RemoveFromCart(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)

	view, err = svc.ClearCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Count)
	assert.True(t, view.Total.Amount.IsZero())
}

func TestUpdateQuantityFlow(t *testing.T) {
	ctx := t.Context()
	svc := newService(t, &recordingNotifier{})

	_, err := svc.AddToCart(ctx, "1", 2, nil)
	require.NoError(t, err)

	view, err := svc.UpdateQuantity(ctx, "1", 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Count)
}

func TestSubmitContact(t *testing.T) {
	tests := []struct {
		name      string
		msg       service.ContactMessage
		wantError string
	}{
		{
			name: "valid message: ok",
			msg: service.ContactMessage{
				Name: "Ada", Email: "ada@example.com", Message: "Hello there",
			},
		},
		{
			name:      "empty name: error",
			msg:       service.ContactMessage{Email: "ada@example.com", Message: "Hi"},
			wantError: "name is empty",
		},
		{
			name:      "invalid email: error",
			msg:       service.ContactMessage{Name: "Ada", Email: "not-an-email", Message: "Hi"},
			wantError: "email[not-an-email] is not valid",
		},
		{
			name:      "empty message: error",
			msg:       service.ContactMessage{Name: "Ada", Email: "ada@example.com"},
			wantError: "message is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			notifier := &recordingNotifier{}
			svc := newService(t, notifier)

			err := svc.SubmitContact(ctx, tt.msg)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				assert.Empty(t, notifier.successes)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, notifier.successes)
		})
	}
}

func TestLoginAndRegister(t *testing.T) {
	ctx := t.Context()
	notifier := &recordingNotifier{}
	svc := newService(t, notifier)

	require.NoError(t, svc.Login(ctx, "user@example.com", "hunter22"))
	require.EqualError(t, svc.Login(ctx, "user@example.com", ""), "password is empty")

	require.NoError(t, svc.Register(ctx, "Ada", "ada@example.com", "longenough"))
	require.EqualError(t,
		svc.Register(ctx, "Ada", "ada@example.com", "short"),
		"password must be at least 8 characters")

	assert.Len(t, notifier.successes, 2)
}

// the logrus notifier satisfies the port and never panics on plain calls
func TestLogNotifier(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	n := notify.NewLog(logger)
	n.Success(t.Context(), "ok")
	n.Error(t.Context(), "nope")
}
