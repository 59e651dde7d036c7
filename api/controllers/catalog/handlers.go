package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/netyark/storefront-backend/api/responses"
	"github.com/netyark/storefront-backend/internal/catalog"
	"github.com/netyark/storefront-backend/pkg/errors"
	"github.com/netyark/storefront-backend/pkg/logger"
)

// ListProducts serves the cached catalog, bypassing the cache when the
// caller asks for ?refresh=true.
func ListProducts(svc *catalog.Service, lowStockThreshold int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forceRefresh := r.URL.Query().Get("refresh") == "true"
		products := svc.Products(r.Context(), forceRefresh)
		responses.WriteSuccess(w, map[string]any{
			"products": toProductResponses(products, lowStockThreshold),
			"count":    len(products),
		})
	}
}

// GetProduct resolves a product under either of its identity fields.
func GetProduct(svc *catalog.Service, lowStockThreshold int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		productID := chi.URLParam(r, "productId")
		product := svc.GetProductByID(ctx, productID)
		if product == nil {
			responses.WriteError(ctx, logg, w, errors.New(errors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, toProductResponse(product, lowStockThreshold))
	}
}

// ProductsByCategory filters the catalog by category, accepting both the
// storefront slug and the upstream display name.
func ProductsByCategory(svc *catalog.Service, lowStockThreshold int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		products := svc.GetProductsByCategory(r.Context(), category)
		responses.WriteSuccess(w, map[string]any{
			"category": catalog.MapCategory(category),
			"products": toProductResponses(products, lowStockThreshold),
			"count":    len(products),
		})
	}
}

// WholesaleProducts serves the wholesale listing from the dedicated
// upstream endpoint.
func WholesaleProducts(svc *catalog.Service, lowStockThreshold int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := svc.WholesaleProducts(r.Context())
		responses.WriteSuccess(w, map[string]any{
			"products": toProductResponses(products, lowStockThreshold),
			"count":    len(products),
		})
	}
}

// LowStockProducts lists products whose resolved count sits in the
// low-stock band, for storefront badges.
func LowStockProducts(svc *catalog.Service, lowStockThreshold int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := svc.LowStockProducts(r.Context(), lowStockThreshold)
		responses.WriteSuccess(w, map[string]any{
			"threshold": lowStockThreshold,
			"products":  toProductResponses(products, lowStockThreshold),
			"count":     len(products),
		})
	}
}
