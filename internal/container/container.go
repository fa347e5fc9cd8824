package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/novamart/storefront/internal/cart"
	"github.com/novamart/storefront/internal/catalog"
	"github.com/novamart/storefront/internal/config"
	"github.com/novamart/storefront/internal/domain"
	"github.com/novamart/storefront/internal/notify"
	"github.com/novamart/storefront/internal/port"
	"github.com/novamart/storefront/internal/server"
	"github.com/novamart/storefront/internal/service"
)

// Container holds all initialized components
type Container struct {
	Config   *config.Config
	Catalog  port.CatalogSource
	Cart     port.CartStore
	Notifier port.Notifier
	Service  *service.Service

	httpServer *http.Server
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config, logger *log.Logger) (*Container, error) {
	policy, err := domain.ParseLineKeyPolicy(cfg.Cart.LineIdentity)
	if err != nil {
		return nil, fmt.Errorf("domain.ParseLineKeyPolicy: %w", err)
	}

	catalogSource := catalog.NewSeededSource()
	cartStore := cart.New(policy)
	notifier := notify.NewLog(logger)

	svc := service.New(
		catalogSource,
		cartStore,
		notifier,
		cfg.Catalog.PageSize,
		time.Duration(cfg.Catalog.LoadingDelayMS)*time.Millisecond,
	)

	priceMin := decimal.NewFromFloat(cfg.Catalog.PriceMin)
	priceMax := decimal.NewFromFloat(cfg.Catalog.PriceMax)
	srv := server.New(svc, logger, priceMin, priceMax)

	return &Container{
		Config:   cfg,
		Catalog:  catalogSource,
		Cart:     cartStore,
		Notifier: notifier,
		Service:  svc,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: srv.Handler(),
		},
	}, nil
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Storefront listening on %s", c.httpServer.Addr)
		if err := c.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("httpServer.ListenAndServe: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(c.Config.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		log.Info("Shutting down storefront...")
		return c.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
