package checkout

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/netyark/storefront-backend/internal/cart"
	"github.com/netyark/storefront-backend/internal/orders"
	"github.com/netyark/storefront-backend/pkg/db/models"
	"github.com/netyark/storefront-backend/pkg/enums"
	pkgerrors "github.com/netyark/storefront-backend/pkg/errors"
)

type stubCarts struct {
	lines   []cart.LineItem
	cleared bool
}

func (s *stubCarts) Get(context.Context, string) (cart.Cart, error) {
	return cart.Cart{Lines: s.lines}, nil
}

func (s *stubCarts) Clear(context.Context, string) error {
	s.cleared = true
	return nil
}

type stubGateway struct {
	result    *orders.Result
	submitted *orders.SubmitOrderRequest
	token     string
}

func (s *stubGateway) Submit(_ context.Context, req orders.SubmitOrderRequest, bearerToken string) (*orders.Result, error) {
	s.submitted = &req
	s.token = bearerToken
	return s.result, nil
}

type stubDecrementer struct {
	decrements map[string]int
}

func (s *stubDecrementer) DecrementStock(productID string, quantity int) {
	if s.decrements == nil {
		s.decrements = map[string]int{}
	}
	s.decrements[productID] += quantity
}

type stubRecorder struct {
	entries []*models.ArchivedOrder
	err     error
}

func (s *stubRecorder) Record(_ context.Context, entry *models.ArchivedOrder) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func confirmedResult() *orders.Result {
	return &orders.Result{
		Outcome: enums.OrderOutcomeConfirmed,
		Order: orders.OrderRecord{
			ID:        "64a000000000000000000001",
			Status:    "pending",
			Total:     386,
			CreatedAt: testNow,
		},
	}
}

func newTestService(t *testing.T, carts *stubCarts, gateway *stubGateway, decrementer *stubDecrementer, recorder *stubRecorder) *Service {
	t.Helper()
	svc, err := NewService(carts, testComposer(), gateway, decrementer, recorder, nil, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.now = func() time.Time { return testNow }
	return svc
}

func testInput() PlaceOrderInput {
	return PlaceOrderInput{
		Customer:      Customer{FirstName: "Ama", LastName: "Mensah", Email: "ama@example.com", Phone: "0200000000"},
		Address:       Address{Address: "12 High St", City: "Accra", Region: "Greater Accra", Zone: "accra", Method: "standard"},
		PaymentMethod: "card",
	}
}

func TestPlaceOrderConfirmed(t *testing.T) {
	t.Parallel()

	carts := &stubCarts{lines: testLines()}
	gateway := &stubGateway{result: confirmedResult()}
	decrementer := &stubDecrementer{}
	recorder := &stubRecorder{}
	svc := newTestService(t, carts, gateway, decrementer, recorder)

	input := testInput()
	input.BearerToken = "token-123"
	placed, err := svc.PlaceOrder(context.Background(), "cart-1", input)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if placed.Outcome != string(enums.OrderOutcomeConfirmed) {
		t.Fatalf("unexpected outcome: %s", placed.Outcome)
	}
	if gateway.token != "token-123" {
		t.Fatalf("expected bearer token forwarded, got %q", gateway.token)
	}
	if gateway.submitted.Total != 386 {
		t.Fatalf("unexpected submitted total: %v", gateway.submitted.Total)
	}
	if !carts.cleared {
		t.Fatal("expected cart cleared")
	}
	if decrementer.decrements["p1"] != 2 {
		t.Fatalf("expected stock decremented by 2, got %d", decrementer.decrements["p1"])
	}
	if len(recorder.entries) != 1 {
		t.Fatalf("expected one archive entry, got %d", len(recorder.entries))
	}

	entry := recorder.entries[0]
	if entry.Outcome != enums.OrderOutcomeConfirmed {
		t.Fatalf("unexpected archived outcome: %s", entry.Outcome)
	}
	if entry.RemoteID == nil || *entry.RemoteID != "64a000000000000000000001" {
		t.Fatalf("expected remote id archived, got %v", entry.RemoteID)
	}
	if entry.TotalAmount != "386" {
		t.Fatalf("unexpected archived total: %q", entry.TotalAmount)
	}
}

func TestPlaceOrderLocalOnly(t *testing.T) {
	t.Parallel()

	carts := &stubCarts{lines: testLines()}
	gateway := &stubGateway{result: &orders.Result{
		Outcome: enums.OrderOutcomeLocalOnly,
		Order: orders.OrderRecord{
			ID:             "order_1700000000000",
			Status:         string(enums.OrderStatusProcessing),
			Total:          386,
			TrackingNumber: "TRKABCDEF123",
			CreatedAt:      testNow,
		},
	}}
	decrementer := &stubDecrementer{}
	recorder := &stubRecorder{}
	svc := newTestService(t, carts, gateway, decrementer, recorder)

	placed, err := svc.PlaceOrder(context.Background(), "cart-1", testInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if placed.Outcome != string(enums.OrderOutcomeLocalOnly) {
		t.Fatalf("unexpected outcome: %s", placed.Outcome)
	}
	// The local path still runs every side effect.
	if !carts.cleared {
		t.Fatal("expected cart cleared on local fallback")
	}
	if decrementer.decrements["p1"] != 2 {
		t.Fatal("expected stock decremented on local fallback")
	}

	entry := recorder.entries[0]
	if entry.RemoteID != nil {
		t.Fatal("local-only orders must not claim a remote id")
	}
	if entry.TrackingNumber == nil || *entry.TrackingNumber != "TRKABCDEF123" {
		t.Fatalf("expected tracking number archived, got %v", entry.TrackingNumber)
	}
	if entry.Status != enums.OrderStatusProcessing {
		t.Fatalf("unexpected archived status: %s", entry.Status)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCarts{}, &stubGateway{result: confirmedResult()}, &stubDecrementer{}, &stubRecorder{})

	_, err := svc.PlaceOrder(context.Background(), "cart-1", testInput())
	if err == nil {
		t.Fatal("expected error for empty cart")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlaceOrderSurvivesArchiveFailure(t *testing.T) {
	t.Parallel()

	carts := &stubCarts{lines: testLines()}
	recorder := &stubRecorder{err: fmt.Errorf("disk full")}
	svc := newTestService(t, carts, &stubGateway{result: confirmedResult()}, &stubDecrementer{}, recorder)

	placed, err := svc.PlaceOrder(context.Background(), "cart-1", testInput())
	if err != nil {
		t.Fatalf("expected order to stand despite archive failure, got %v", err)
	}
	if placed.Order.ID == "" {
		t.Fatal("expected order record returned")
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCarts{lines: testLines()}, &stubGateway{result: confirmedResult()}, &stubDecrementer{}, &stubRecorder{})

	totals, err := svc.Preview(context.Background(), "cart-1", "accra", "standard")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !totals.Total.Equal(decimal.NewFromInt(386)) {
		t.Fatalf("expected total 386, got %s", totals.Total)
	}
}
