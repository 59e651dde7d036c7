package shipping

import (
	"context"
	"net/http"
	"time"

	"github.com/netyark/storefront-backend/api/middleware"
	"github.com/netyark/storefront-backend/api/responses"
	"github.com/netyark/storefront-backend/api/validators"
	"github.com/netyark/storefront-backend/internal/cart"
	"github.com/netyark/storefront-backend/internal/shipping"
	"github.com/netyark/storefront-backend/pkg/logger"
)

type cartLoader interface {
	Get(ctx context.Context, cartID string) (cart.Cart, error)
}

// QuoteRequest prices the caller's current cart for a destination and
// delivery method.
type QuoteRequest struct {
	Zone   string `json:"zone" validate:"required"`
	Method string `json:"method" validate:"required"`
}

type ZoneResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	BaseCost   float64 `json:"base_cost"`
	Multiplier float64 `json:"multiplier"`
}

type MethodResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BaseDays    int     `json:"base_days"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

type OptionResponse struct {
	Method            MethodResponse `json:"method"`
	Cost              float64        `json:"cost"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
}

type QuoteResponse struct {
	Zone              ZoneResponse   `json:"zone"`
	Method            MethodResponse `json:"method"`
	Cost              float64        `json:"cost"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
}

// ListZones serves the static delivery zone table.
func ListZones(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zones := make([]ZoneResponse, 0)
		for _, zone := range shipping.Zones() {
			zones = append(zones, toZoneResponse(zone))
		}
		responses.WriteSuccess(w, map[string]any{"zones": zones})
	}
}

// ListOptions prices every delivery method for the requested zone.
// Unknown zones price at the international tier.
func ListOptions(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zoneID := r.URL.Query().Get("zone")
		options := make([]OptionResponse, 0)
		for _, opt := range shipping.Options(zoneID, time.Now()) {
			options = append(options, OptionResponse{
				Method:            toMethodResponse(opt.Method),
				Cost:              opt.Cost.InexactFloat64(),
				EstimatedDelivery: opt.EstimatedDelivery,
			})
		}
		responses.WriteSuccess(w, map[string]any{
			"zone":    toZoneResponse(shipping.ZoneByID(zoneID)),
			"options": options,
		})
	}
}

// QuoteCart prices the session's cart, including weight surcharges and
// the free-shipping override.
func QuoteCart(carts cartLoader, cfg shipping.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := middleware.CartSessionFromContext(ctx)

		var req QuoteRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		current, err := carts.Get(ctx, cartID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		lines := make([]shipping.QuoteLine, 0, len(current.Lines))
		for _, line := range current.Lines {
			lines = append(lines, shipping.QuoteLine{Quantity: line.Quantity, UnitPrice: line.Price})
		}

		quote := shipping.Calculate(lines, req.Zone, req.Method, cfg, time.Now())
		responses.WriteSuccess(w, QuoteResponse{
			Zone:              toZoneResponse(quote.Zone),
			Method:            toMethodResponse(quote.Method),
			Cost:              quote.Cost.InexactFloat64(),
			EstimatedDelivery: quote.EstimatedDelivery,
		})
	}
}

func toZoneResponse(zone shipping.Zone) ZoneResponse {
	return ZoneResponse{
		ID:         zone.ID,
		Name:       zone.Name,
		BaseCost:   zone.BaseCost.InexactFloat64(),
		Multiplier: zone.Multiplier.InexactFloat64(),
	}
}

func toMethodResponse(method shipping.Method) MethodResponse {
	return MethodResponse{
		ID:          method.ID,
		Name:        method.Name,
		BaseDays:    method.BaseDays,
		Multiplier:  method.CostMultiplier.InexactFloat64(),
		Description: method.Description,
	}
}
