package checkout

import (
	"net/http"
	"time"

	"github.com/netyark/storefront-backend/api/middleware"
	"github.com/netyark/storefront-backend/api/responses"
	"github.com/netyark/storefront-backend/api/validators"
	"github.com/netyark/storefront-backend/internal/checkout"
	"github.com/netyark/storefront-backend/pkg/logger"
)

type TotalsResponse struct {
	Subtotal          float64   `json:"subtotal"`
	Shipping          float64   `json:"shipping"`
	Tax               float64   `json:"tax"`
	Total             float64   `json:"total"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

type OrderResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	Total          float64   `json:"total"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type PlacedOrderResponse struct {
	Outcome string         `json:"outcome"`
	Order   OrderResponse  `json:"order"`
	Totals  TotalsResponse `json:"totals"`
}

// Preview prices the session's cart for a destination without
// submitting an order.
func Preview(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := middleware.CartSessionFromContext(ctx)

		var req PreviewRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		totals, err := svc.Preview(ctx, cartID, req.Zone, req.Method)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toTotalsResponse(totals))
	}
}

// PlaceOrder submits the session's cart. The response reports whether
// the upstream confirmed the order or the storefront recorded it
// locally.
func PlaceOrder(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := middleware.CartSessionFromContext(ctx)

		var req PlaceOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		placed, err := svc.PlaceOrder(ctx, cartID, checkout.PlaceOrderInput{
			Customer:      req.customer(),
			Address:       req.address(),
			PaymentMethod: req.PaymentMethod,
			UserID:        middleware.UserIDFromContext(ctx),
			BearerToken:   middleware.BearerTokenFromContext(ctx),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		logg.Info(logg.WithField(ctx, "order_id", placed.Order.ID), "order placed")
		responses.WriteSuccessStatus(w, http.StatusCreated, PlacedOrderResponse{
			Outcome: placed.Outcome,
			Order: OrderResponse{
				ID:             placed.Order.ID,
				Status:         placed.Order.Status,
				Total:          placed.Order.Total,
				TrackingNumber: placed.Order.TrackingNumber,
				CreatedAt:      placed.Order.CreatedAt,
			},
			Totals: toTotalsResponse(placed.Totals),
		})
	}
}

func toTotalsResponse(totals checkout.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:          totals.Subtotal.InexactFloat64(),
		Shipping:          totals.Shipping.InexactFloat64(),
		Tax:               totals.Tax.InexactFloat64(),
		Total:             totals.Total.InexactFloat64(),
		EstimatedDelivery: totals.EstimatedDelivery,
	}
}
