package container_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront/internal/config"
	"github.com/novamart/storefront/internal/container"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "localhost",
			Port:            0, // ephemeral port
			ShutdownTimeout: 2,
		},
		Catalog: config.CatalogConfig{
			PageSize: 8,
			PriceMin: 0,
			PriceMax: 500,
		},
		Cart: config.CartConfig{LineIdentity: "product"},
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestNew(t *testing.T) {
	app, err := container.New(testConfig(), quietLogger())
	require.NoError(t, err)

	assert.NotNil(t, app.Catalog)
	assert.NotNil(t, app.Cart)
	assert.NotNil(t, app.Service)
	assert.NotNil(t, app.Notifier)
}

func TestNewRejectsUnknownLineIdentity(t *testing.T) {
	cfg := testConfig()
	cfg.Cart.LineIdentity = "bogus"

	_, err := container.New(cfg, quietLogger())
	require.ErrorContains(t, err, "line key policy[bogus] is not valid")
}

func TestRunShutsDownOnCancel(t *testing.T) {
	app, err := container.New(testConfig(), quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	// give the listener a moment, then trigger graceful shutdown
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
