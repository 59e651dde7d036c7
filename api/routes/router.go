package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cartcontrollers "github.com/netyark/storefront-backend/api/controllers/cart"
	catalogcontrollers "github.com/netyark/storefront-backend/api/controllers/catalog"
	checkoutcontrollers "github.com/netyark/storefront-backend/api/controllers/checkout"
	ordercontrollers "github.com/netyark/storefront-backend/api/controllers/orders"
	shippingcontrollers "github.com/netyark/storefront-backend/api/controllers/shipping"

	"github.com/netyark/storefront-backend/api/controllers"
	"github.com/netyark/storefront-backend/api/middleware"
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

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	archiveDB *db.Client,
	httpMetrics *metrics.HTTPMetrics,
	catalogService *catalogsvc.Service,
	cartStore *cartsvc.Store,
	shippingCfg shipping.Config,
	checkoutService *checkoutsvc.Service,
	orderArchive *orderssvc.Archive,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	lowStock := cfg.Catalog.LowStockThreshold

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient, archiveDB))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CartSession(logg))
		r.Use(middleware.OptionalAuth(cfg.JWT, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogcontrollers.ListProducts(catalogService, lowStock, logg))
			r.Get("/wholesale", catalogcontrollers.WholesaleProducts(catalogService, lowStock, logg))
			r.Get("/low-stock", catalogcontrollers.LowStockProducts(catalogService, lowStock, logg))
			r.Get("/category/{category}", catalogcontrollers.ProductsByCategory(catalogService, lowStock, logg))
			r.Get("/{productId}", catalogcontrollers.GetProduct(catalogService, lowStock, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.FetchCart(cartStore, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.MutationGuard(redisClient, logg))
				r.Post("/items", cartcontrollers.AddItem(cartStore, logg))
				r.Post("/items/wholesale", cartcontrollers.AddWholesaleItem(cartStore, logg))
				r.Patch("/items/{productId}", cartcontrollers.SetQuantity(cartStore, logg))
				r.Delete("/items/{productId}", cartcontrollers.RemoveItem(cartStore, logg))
				r.Delete("/", cartcontrollers.ClearCart(cartStore, logg))
			})
		})

		r.Route("/shipping", func(r chi.Router) {
			r.Get("/zones", shippingcontrollers.ListZones(logg))
			r.Get("/options", shippingcontrollers.ListOptions(logg))
			r.Post("/quote", shippingcontrollers.QuoteCart(cartStore, shippingCfg, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/preview", checkoutcontrollers.Preview(checkoutService, logg))
			r.With(middleware.MutationGuard(redisClient, logg)).
				Post("/", checkoutcontrollers.PlaceOrder(checkoutService, logg))
		})

		r.Get("/orders", ordercontrollers.ListOrders(orderArchive, logg))
	})

	return r
}
