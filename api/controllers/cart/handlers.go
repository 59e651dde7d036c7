package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/netyark/storefront-backend/api/middleware"
	"github.com/netyark/storefront-backend/api/responses"
	"github.com/netyark/storefront-backend/api/validators"
	"github.com/netyark/storefront-backend/internal/cart"
	"github.com/netyark/storefront-backend/pkg/logger"
)

// FetchCart returns the caller's cart, which is empty rather than
// missing for a fresh session.
func FetchCart(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := middleware.CartSessionFromContext(ctx)

		current, err := store.Get(ctx, cartID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartResponse(cartID, current))
	}
}

// AddItem adds a retail line, merging into an existing line for the
// same product.
func AddItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := middleware.CartSessionFromContext(ctx)

		var req AddItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		line, err := store.AddItem(ctx, cartID, req.ProductID, req.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		logg.Info(logg.WithProductID(ctx, req.ProductID), "cart item added")
		writeUpdatedCart(w, r, store, logg, cartID, line)
	}
}

// AddWholesaleItem adds a wholesale line, enforcing the product's
// minimum order quantity.
func AddWholesaleItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := middleware.CartSessionFromContext(ctx)

		var req AddWholesaleItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		line, err := store.AddWholesaleItem(ctx, cartID, req.ProductID, req.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		logg.Info(logg.WithProductID(ctx, req.ProductID), "wholesale cart item added")
		writeUpdatedCart(w, r, store, logg, cartID, line)
	}
}

// SetQuantity overwrites a line's quantity. Zero removes the line;
// values below a wholesale line's minimum are rejected.
func SetQuantity(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := middleware.CartSessionFromContext(ctx)
		productID := chi.URLParam(r, "productId")

		var req SetQuantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := store.SetQuantity(ctx, cartID, productID, req.Quantity); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeUpdatedCart(w, r, store, logg, cartID, nil)
	}
}

// RemoveItem deletes a line from the cart.
func RemoveItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := middleware.CartSessionFromContext(ctx)
		productID := chi.URLParam(r, "productId")

		if err := store.RemoveItem(ctx, cartID, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeUpdatedCart(w, r, store, logg, cartID, nil)
	}
}

// ClearCart drops every line for the session.
func ClearCart(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := middleware.CartSessionFromContext(ctx)

		if err := store.Clear(ctx, cartID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartResponse(cartID, cart.Cart{}))
	}
}

// writeUpdatedCart re-reads the cart after a mutation so the response
// reflects the persisted state, not what the handler thinks it wrote.
func writeUpdatedCart(w http.ResponseWriter, r *http.Request, store *cart.Store, logg *logger.Logger, cartID string, added *cart.LineItem) {
	ctx := r.Context()
	current, err := store.Get(ctx, cartID)
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}

	resp := map[string]any{"cart": toCartResponse(cartID, current)}
	if added != nil {
		resp["item"] = toLineResponse(*added)
	}
	responses.WriteSuccess(w, resp)
}
