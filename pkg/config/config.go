package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix  = "netyark"
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Archive  ArchiveConfig
	JWT      JWTConfig
	Pricing  PricingConfig
	Shipping ShippingConfig
	Catalog  CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NETYARK_APP_ENV" default:"development"`
	Port         string `envconfig:"NETYARK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"NETYARK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NETYARK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points at the catalog/order API the storefront fronts.
type UpstreamConfig struct {
	BaseURL        string        `envconfig:"NETYARK_UPSTREAM_BASE_URL" required:"true"`
	CatalogTimeout time.Duration `envconfig:"NETYARK_UPSTREAM_CATALOG_TIMEOUT" default:"10s"`
	OrderTimeout   time.Duration `envconfig:"NETYARK_UPSTREAM_ORDER_TIMEOUT" default:"15s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"NETYARK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"NETYARK_REDIS_ADDR"`
	Password     string        `envconfig:"NETYARK_REDIS_PASSWORD"`
	DB           int           `envconfig:"NETYARK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NETYARK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NETYARK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NETYARK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NETYARK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NETYARK_REDIS_WRITE_TIMEOUT" default:"5s"`
	CartTTL      time.Duration `envconfig:"NETYARK_REDIS_CART_TTL" default:"720h"`
}

// ArchiveConfig locates the local order archive database.
type ArchiveConfig struct {
	Path string `envconfig:"NETYARK_ARCHIVE_PATH" default:"orders.db"`
}

// JWTConfig carries the shared secret used by the upstream auth service.
// The storefront only verifies tokens; it never issues them.
type JWTConfig struct {
	Secret string `envconfig:"NETYARK_JWT_SECRET"`
	Issuer string `envconfig:"NETYARK_JWT_ISSUER"`
}

// PricingConfig exposes the order-math constants as configuration.
type PricingConfig struct {
	TaxRate string `envconfig:"NETYARK_PRICING_TAX_RATE" default:"0.12"`
}

// ShippingConfig exposes the shipping constants as configuration.
// Costs and thresholds are decimal strings in major currency units.
type ShippingConfig struct {
	FreeThreshold    string  `envconfig:"NETYARK_SHIPPING_FREE_THRESHOLD" default:"500"`
	ItemWeightKg     float64 `envconfig:"NETYARK_SHIPPING_ITEM_WEIGHT_KG" default:"0.5"`
	HeavyThresholdKg float64 `envconfig:"NETYARK_SHIPPING_HEAVY_THRESHOLD_KG" default:"5"`
	HeavySurchargeKg string  `envconfig:"NETYARK_SHIPPING_HEAVY_SURCHARGE_PER_KG" default:"20"`
}

type CatalogConfig struct {
	RefreshInterval   time.Duration `envconfig:"NETYARK_CATALOG_REFRESH_INTERVAL" default:"5m"`
	LowStockThreshold int           `envconfig:"NETYARK_CATALOG_LOW_STOCK_THRESHOLD" default:"5"`
}
