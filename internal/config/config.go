package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the storefront
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Cart    CartConfig    `mapstructure:"cart"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// CatalogConfig holds listing defaults
type CatalogConfig struct {
	PageSize int     `mapstructure:"page_size"`
	PriceMin float64 `mapstructure:"price_min"`
	PriceMax float64 `mapstructure:"price_max"`

	// LoadingDelayMS is the cosmetic delay before listing results are
	// returned. Purely presentational; zero disables it.
	LoadingDelayMS int `mapstructure:"loading_delay_ms"`
}

// CartConfig holds cart behavior settings
type CartConfig struct {
	// LineIdentity is "product" or "product_variants".
	LineIdentity string `mapstructure:"line_identity"`
}

// Load loads configuration from an optional YAML file with environment
// variable overrides. A missing config file is fine; defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.Catalog.PageSize < 1 {
		return nil, fmt.Errorf("catalog.page_size[%d] must be positive", config.Catalog.PageSize)
	}
	if config.Catalog.PriceMin < 0 || config.Catalog.PriceMax < config.Catalog.PriceMin {
		return nil, fmt.Errorf("catalog price range [%v, %v] is not valid",
			config.Catalog.PriceMin, config.Catalog.PriceMax)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdown_timeout", 10)

	viper.SetDefault("catalog.page_size", 8)
	viper.SetDefault("catalog.price_min", 0)
	viper.SetDefault("catalog.price_max", 500)
	viper.SetDefault("catalog.loading_delay_ms", 0)

	viper.SetDefault("cart.line_identity", "product")
}
