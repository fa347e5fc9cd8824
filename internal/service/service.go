package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/novamart/storefront/internal/catalog"
	"github.com/novamart/storefront/internal/domain"
	"github.com/novamart/storefront/internal/port"
)

const featuredCount = 4

// Service is the storefront facade: listing, product detail, cart flows
// and the simulated account/contact forms.
type Service struct {
	catalog  port.CatalogSource
	cart     port.CartStore
	notifier port.Notifier

	pageSize int
	// loadingDelay is cosmetic only. Results are identical with it removed,
	// so tests run with zero.
	loadingDelay time.Duration
}

func New(
	catalogSource port.CatalogSource,
	cartStore port.CartStore,
	notifier port.Notifier,
	pageSize int,
	loadingDelay time.Duration,
) *Service {
	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}

	return &Service{
		catalog:      catalogSource,
		cart:         cartStore,
		notifier:     notifier,
		pageSize:     pageSize,
		loadingDelay: loadingDelay,
	}
}

// CartView is the cart plus its derived totals.
type CartView struct {
	Items []domain.CartItem `json:"items"`
	Total domain.Money      `json:"total"`
	Count int               `json:"count"`
}

func (s *Service) ListProducts(ctx context.Context, params *catalog.Params) (catalog.Page, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return catalog.Page{}, fmt.Errorf("catalog.Products: %w", err)
	}

	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return catalog.Page{}, fmt.Errorf("catalog.Categories: %w", err)
	}

	if err := s.sleep(ctx); err != nil {
		return catalog.Page{}, err
	}

	return catalog.Run(products, categories, params.Query(s.pageSize)), nil
}

func (s *Service) ProductDetail(ctx context.Context, id string) (domain.Product, error) {
	product, err := s.catalog.Product(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("catalog.Product: %w", err)
	}
	return product, nil
}

// Featured returns the first products in catalog order for the home surface.
func (s *Service) Featured(ctx context.Context) ([]domain.Product, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Products: %w", err)
	}

	if len(products) > featuredCount {
		products = products[:featuredCount]
	}
	return products, nil
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Categories: %w", err)
	}
	return categories, nil
}

func (s *Service) AddToCart(ctx context.Context, productID string, quantity int, selected map[string]string) (CartView, error) {
	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			s.notifier.Error(ctx, "This product is no longer available")
		}
		return CartView{}, fmt.Errorf("catalog.Product: %w", err)
	}

	if !product.InStock() {
		s.notifier.Error(ctx, fmt.Sprintf("%s is out of stock", product.Name))
		return s.cartView(ctx)
	}

	if err := s.cart.AddItem(ctx, product, quantity, selected); err != nil {
		return CartView{}, fmt.Errorf("cart.AddItem: %w", err)
	}

	s.notifier.Success(ctx, fmt.Sprintf("%s added to cart", product.Name))
	return s.cartView(ctx)
}

func (s *Service) RemoveFromCart(ctx context.Context, productID string) (CartView, error) {
	removed, err := s.cart.RemoveItem(ctx, productID)
	if err != nil {
		return CartView{}, fmt.Errorf("cart.RemoveItem: %w", err)
	}

	if removed {
		s.notifier.Success(ctx, "Item removed from cart")
	}
	return s.cartView(ctx)
}

func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) (CartView, error) {
	if err := s.cart.UpdateQuantity(ctx, productID, quantity); err != nil {
		return CartView{}, fmt.Errorf("cart.UpdateQuantity: %w", err)
	}
	return s.cartView(ctx)
}

func (s *Service) ClearCart(ctx context.Context) (CartView, error) {
	if err := s.cart.Clear(ctx); err != nil {
		return CartView{}, fmt.Errorf("cart.Clear: %w", err)
	}

	s.notifier.Success(ctx, "Cart cleared")
	return s.cartView(ctx)
}

func (s *Service) Cart(ctx context.Context) (CartView, error) {
	return s.cartView(ctx)
}

// ContactMessage is the contact form payload.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact validates the form shape and simulates success. Nothing is
// sent anywhere.
func (s *Service) SubmitContact(ctx context.Context, msg ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" {
		return fmt.Errorf("name is empty")
	}
	if err := validEmail(msg.Email); err != nil {
		return err
	}
	if strings.TrimSpace(msg.Message) == "" {
		return fmt.Errorf("message is empty")
	}

	log.WithField("email", msg.Email).Debug("contact form submitted")
	s.notifier.Success(ctx, "Thanks for reaching out! We'll get back to you soon.")
	return nil
}

// Login simulates a sign-in; there is no real authentication.
func (s *Service) Login(ctx context.Context, email, password string) error {
	if err := validEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is empty")
	}

	s.notifier.Success(ctx, "Welcome back!")
	return nil
}

// Register simulates account creation; there is no real persistence.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is empty")
	}
	if err := validEmail(email); err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	s.notifier.Success(ctx, fmt.Sprintf("Welcome, %s! Your account is ready.", name))
	return nil
}

func (s *Service) cartView(ctx context.Context) (CartView, error) {
	cart, err := s.cart.Cart(ctx)
	if err != nil {
		return CartView{}, fmt.Errorf("cart.Cart: %w", err)
	}

	total, err := cart.Total()
	if err != nil {
		return CartView{}, fmt.Errorf("cart.Total: %w", err)
	}

	return CartView{
		Items: cart.Items,
		Total: total,
		Count: cart.Count(),
	}, nil
}

func (s *Service) sleep(ctx context.Context) error {
	if s.loadingDelay <= 0 {
		return nil
	}

	select {
	case <-time.After(s.loadingDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func validEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("email[%s] is not valid", email)
	}
	return nil
}
