package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/netyark/storefront-backend/internal/cart"
	"github.com/netyark/storefront-backend/internal/orders"
	"github.com/netyark/storefront-backend/pkg/db/models"
	"github.com/netyark/storefront-backend/pkg/enums"
	"github.com/netyark/storefront-backend/pkg/logger"
	"github.com/netyark/storefront-backend/pkg/metrics"
	"github.com/netyark/storefront-backend/pkg/types"
)

type cartStore interface {
	Get(ctx context.Context, cartID string) (cart.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

type submitter interface {
	Submit(ctx context.Context, req orders.SubmitOrderRequest, bearerToken string) (*orders.Result, error)
}

type stockDecrementer interface {
	DecrementStock(productID string, quantity int)
}

type orderRecorder interface {
	Record(ctx context.Context, entry *models.ArchivedOrder) error
}

// Service runs the checkout flow: compose, submit, then the local side
// effects (inventory decrement, cart clear, archive) that keep the
// storefront consistent on both submission paths.
type Service struct {
	carts    cartStore
	composer *Composer
	gateway  submitter
	catalog  stockDecrementer
	archive  orderRecorder
	metrics  *metrics.CheckoutMetrics
	logg     *logger.Logger
	now      func() time.Time
}

// NewService wires the checkout flow.
func NewService(carts cartStore, composer *Composer, gateway submitter, catalog stockDecrementer, archive orderRecorder, checkoutMetrics *metrics.CheckoutMetrics, logg *logger.Logger) (*Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if composer == nil {
		return nil, fmt.Errorf("composer required")
	}
	if gateway == nil {
		return nil, fmt.Errorf("order gateway required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if archive == nil {
		return nil, fmt.Errorf("order archive required")
	}
	return &Service{
		carts:    carts,
		composer: composer,
		gateway:  gateway,
		catalog:  catalog,
		archive:  archive,
		metrics:  checkoutMetrics,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// PlaceOrderInput carries everything the checkout form collected.
type PlaceOrderInput struct {
	Customer      Customer
	Address       Address
	PaymentMethod string
	UserID        string
	BearerToken   string
}

// PlacedOrder is the checkout result handed back to the UI.
type PlacedOrder struct {
	Outcome string
	Order   orders.OrderRecord
	Totals  Totals
}

// Preview computes totals for the current cart without submitting.
func (s *Service) Preview(ctx context.Context, cartID, zoneID, methodID string) (Totals, error) {
	current, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return Totals{}, err
	}
	return s.composer.Totals(current.Lines, zoneID, methodID, s.now())
}

// PlaceOrder composes and submits the cart. Once the gateway answers,
// whether confirmed or local-only, the order stands; side-effect
// failures are logged but no longer fail the checkout.
func (s *Service) PlaceOrder(ctx context.Context, cartID string, input PlaceOrderInput) (*PlacedOrder, error) {
	current, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	draft, err := s.composer.Compose(current.Lines, input.Customer, input.Address, input.PaymentMethod, s.now())
	if err != nil {
		return nil, err
	}

	result, err := s.gateway.Submit(ctx, draft.Payload, input.BearerToken)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncOrder(string(result.Outcome))
	}

	if err := s.settle(ctx, cartID, current, input, draft, result); err != nil && s.logg != nil {
		s.logg.Error(ctx, "checkout side effects incomplete", err)
	}

	return &PlacedOrder{
		Outcome: string(result.Outcome),
		Order:   result.Order,
		Totals:  draft.Totals,
	}, nil
}

func (s *Service) settle(ctx context.Context, cartID string, current cart.Cart, input PlaceOrderInput, draft *Draft, result *orders.Result) error {
	for _, line := range current.Lines {
		s.catalog.DecrementStock(line.ProductID, line.Quantity)
	}

	var errs []error
	if err := s.carts.Clear(ctx, cartID); err != nil {
		errs = append(errs, fmt.Errorf("clear cart: %w", err))
	}
	if err := s.archive.Record(ctx, s.archiveEntry(cartID, input, draft, result)); err != nil {
		errs = append(errs, err)
	}
	return multierr.Combine(errs...)
}

func (s *Service) archiveEntry(cartID string, input PlaceOrderInput, draft *Draft, result *orders.Result) *models.ArchivedOrder {
	entry := &models.ArchivedOrder{
		ID:            uuid.New(),
		CartSessionID: cartID,
		Outcome:       result.Outcome,
		TotalAmount:   draft.Totals.Total.String(),
		Status:        enums.OrderStatusPending,
		Payload: types.JSONMap{
			"order_id":       result.Order.ID,
			"products":       draft.Payload.Products,
			"customer":       draft.Payload.Customer,
			"shipping":       draft.Payload.Shipping,
			"payment_method": draft.Payload.PaymentMethod,
		},
	}
	if status, err := enums.ParseOrderStatus(result.Order.Status); err == nil {
		entry.Status = status
	}
	if result.Outcome == enums.OrderOutcomeConfirmed && result.Order.ID != "" {
		remoteID := result.Order.ID
		entry.RemoteID = &remoteID
	}
	if result.Order.TrackingNumber != "" {
		tracking := result.Order.TrackingNumber
		entry.TrackingNumber = &tracking
	}
	if input.UserID != "" {
		userID := input.UserID
		entry.UserID = &userID
	}
	return entry
}
