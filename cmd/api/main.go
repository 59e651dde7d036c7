package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/netyark/storefront-backend/api/routes"
	cartsvc "github.com/netyark/storefront-backend/internal/cart"
	catalogsvc "github.com/netyark/storefront-backend/internal/catalog"
	checkoutsvc "github.com/netyark/storefront-backend/internal/checkout"
	orderssvc "github.com/netyark/storefront-backend/internal/orders"
	"github.com/netyark/storefront-backend/internal/shipping"
	"github.com/netyark/storefront-backend/pkg/config"
	"github.com/netyark/storefront-backend/pkg/db"
	"github.com/netyark/storefront-backend/pkg/logger"
	"github.com/netyark/storefront-backend/pkg/metrics"
	"github.com/netyark/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	archiveDB, err := db.New(context.Background(), cfg.Archive, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap order archive", err)
		os.Exit(1)
	}
	defer func() {
		if err := archiveDB.Close(); err != nil {
			logg.Error(context.Background(), "error closing order archive", err)
		}
	}()

	refreshCtx, stopRefresher := context.WithCancel(context.Background())
	defer stopRefresher()

	upstream, err := catalogsvc.NewAPIClient(cfg.Upstream)
	if err != nil {
		logg.Error(context.Background(), "failed to create upstream client", err)
		os.Exit(1)
	}
	catalogService := catalogsvc.NewService(upstream, logg)
	catalogService.StartRefresher(refreshCtx, cfg.Catalog.RefreshInterval)

	cartRepo, err := cartsvc.NewRepository(redisClient, cfg.Redis.CartTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart repository", err)
		os.Exit(1)
	}
	cartStore, err := cartsvc.NewStore(cartRepo, catalogService, cfg.Catalog.LowStockThreshold)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	taxRate, err := decimal.NewFromString(cfg.Pricing.TaxRate)
	if err != nil {
		logg.Error(context.Background(), "invalid tax rate", err)
		os.Exit(1)
	}
	shippingCfg, err := shipping.ConfigFrom(cfg.Shipping)
	if err != nil {
		logg.Error(context.Background(), "invalid shipping config", err)
		os.Exit(1)
	}

	gateway, err := orderssvc.NewGateway(cfg.Upstream, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create order gateway", err)
		os.Exit(1)
	}
	archive, err := orderssvc.NewArchive(archiveDB.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create order archive", err)
		os.Exit(1)
	}

	registry := prometheus.DefaultRegisterer
	httpMetrics := metrics.NewHTTPMetrics(registry)
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	composer := checkoutsvc.NewComposer(taxRate, shippingCfg)
	checkoutService, err := checkoutsvc.NewService(cartStore, composer, gateway, catalogService, archive, checkoutMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			archiveDB,
			httpMetrics,
			catalogService,
			cartStore,
			shippingCfg,
			checkoutService,
			archive,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stop:
		logg.Info(ctx, "shutdown signal received")
		stopRefresher()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
