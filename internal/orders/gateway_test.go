package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/netyark/storefront-backend/pkg/config"
	"github.com/netyark/storefront-backend/pkg/enums"
)

func testRequest() SubmitOrderRequest {
	return SubmitOrderRequest{
		Products: []OrderItem{{Product: "p1", Quantity: 2}},
		Total:    386,
		Customer: CustomerPayload{FirstName: "Ama", LastName: "Mensah", Email: "ama@example.com", Phone: "0200000000"},
		Shipping: ShippingPayload{Address: "12 High St", City: "Accra", Region: "Greater Accra", Zone: "accra", Method: "standard"},
		PaymentMethod: "card",
	}
}

func newTestGateway(t *testing.T, baseURL string) *Gateway {
	t.Helper()
	g, err := NewGateway(config.UpstreamConfig{BaseURL: baseURL, OrderTimeout: 5 * time.Second}, nil)
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}
	return g
}

func TestSubmitConfirmed(t *testing.T) {
	t.Parallel()

	var received SubmitOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"_id":       "64a000000000000000000001",
			"status":    "pending",
			"total":     386,
			"createdAt": time.Now().UTC(),
		})
	}))
	defer srv.Close()

	result, err := newTestGateway(t, srv.URL).Submit(context.Background(), testRequest(), "token-123")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.Outcome != enums.OrderOutcomeConfirmed {
		t.Fatalf("expected confirmed outcome, got %s", result.Outcome)
	}
	if result.Order.ID != "64a000000000000000000001" {
		t.Fatalf("unexpected order id: %q", result.Order.ID)
	}
	if result.Order.TrackingNumber != "" {
		t.Fatal("confirmed orders carry no local tracking number")
	}
	if len(received.Products) != 1 || received.Products[0].Product != "p1" {
		t.Fatalf("unexpected submitted products: %+v", received.Products)
	}
}

func TestSubmitRejectedFallsBackToLocal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	result, err := newTestGateway(t, srv.URL).Submit(context.Background(), testRequest(), "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.Outcome != enums.OrderOutcomeLocalOnly {
		t.Fatalf("expected local-only outcome, got %s", result.Outcome)
	}
	if !strings.HasPrefix(result.Order.ID, "order_") {
		t.Fatalf("unexpected local order id: %q", result.Order.ID)
	}
	if result.Order.Status != string(enums.OrderStatusProcessing) {
		t.Fatalf("unexpected status: %q", result.Order.Status)
	}
	if result.Order.Total != 386 {
		t.Fatalf("unexpected total: %v", result.Order.Total)
	}
}

func TestSubmitTransportErrorFallsBackToLocal(t *testing.T) {
	t.Parallel()

	// Nothing listens on this port.
	result, err := newTestGateway(t, "http://127.0.0.1:1").Submit(context.Background(), testRequest(), "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Outcome != enums.OrderOutcomeLocalOnly {
		t.Fatalf("expected local-only outcome, got %s", result.Outcome)
	}
}

func TestSubmitUnreadableResponseFallsBackToLocal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	result, err := newTestGateway(t, srv.URL).Submit(context.Background(), testRequest(), "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Outcome != enums.OrderOutcomeLocalOnly {
		t.Fatalf("expected local-only outcome, got %s", result.Outcome)
	}
}

func TestTrackingNumberFormat(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		tracking := newTrackingNumber()
		if len(tracking) != 12 || !strings.HasPrefix(tracking, "TRK") {
			t.Fatalf("unexpected tracking number: %q", tracking)
		}
		for _, c := range tracking[3:] {
			if !strings.ContainsRune(trackingCharset, c) {
				t.Fatalf("unexpected character %q in %q", c, tracking)
			}
		}
	}
}
