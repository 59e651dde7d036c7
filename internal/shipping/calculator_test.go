package shipping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func lines(quantity int, unitPrice int64) []QuoteLine {
	return []QuoteLine{{Quantity: quantity, UnitPrice: decimal.NewFromInt(unitPrice)}}
}

func TestCalculateAccraStandard(t *testing.T) {
	t.Parallel()

	quote := Calculate(lines(1, 100), "accra", "standard", DefaultConfig(), testNow)
	if !quote.Cost.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected 50, got %s", quote.Cost)
	}
}

func TestCalculateWesternExpress(t *testing.T) {
	t.Parallel()

	// 150 × 2.0 × 2.5 = 750.
	quote := Calculate(lines(1, 100), "western", "express", DefaultConfig(), testNow)
	if !quote.Cost.Equal(decimal.NewFromInt(750)) {
		t.Fatalf("expected 750, got %s", quote.Cost)
	}
}

func TestCalculateWeightSurcharge(t *testing.T) {
	t.Parallel()

	// 12 units at 0.5kg each weigh 6kg; 1kg over threshold adds 20.
	quote := Calculate(lines(12, 10), "accra", "standard", DefaultConfig(), testNow)
	if !quote.Cost.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("expected 70, got %s", quote.Cost)
	}
}

func TestCalculateFreeStandardShipping(t *testing.T) {
	t.Parallel()

	quote := Calculate(lines(1, 500), "northern", "standard", DefaultConfig(), testNow)
	if !quote.Cost.IsZero() {
		t.Fatalf("expected free shipping, got %s", quote.Cost)
	}

	// The override applies to the standard method only.
	quote = Calculate(lines(1, 500), "northern", "express", DefaultConfig(), testNow)
	if quote.Cost.IsZero() {
		t.Fatal("expected express to stay paid above the threshold")
	}

	// Just below the threshold stays paid.
	quote = Calculate(lines(1, 499), "accra", "standard", DefaultConfig(), testNow)
	if quote.Cost.IsZero() {
		t.Fatal("expected paid shipping below the threshold")
	}
}

func TestCalculateFreeShippingBeatsSurcharge(t *testing.T) {
	t.Parallel()

	// Heavy but expensive cart still ships free on standard.
	quote := Calculate(lines(20, 100), "accra", "standard", DefaultConfig(), testNow)
	if !quote.Cost.IsZero() {
		t.Fatalf("expected free shipping, got %s", quote.Cost)
	}
}

func TestCalculateEmptyCart(t *testing.T) {
	t.Parallel()

	quote := Calculate(nil, "accra", "standard", DefaultConfig(), testNow)
	if !quote.Cost.IsZero() {
		t.Fatalf("expected zero cost for empty cart, got %s", quote.Cost)
	}
}

func TestCalculateUnknownZoneAndMethodFallBack(t *testing.T) {
	t.Parallel()

	quote := Calculate(lines(1, 100), "mars", "teleport", DefaultConfig(), testNow)
	if quote.Zone.ID != FallbackZoneID {
		t.Fatalf("expected international fallback, got %s", quote.Zone.ID)
	}
	if quote.Method.ID != DefaultMethodID {
		t.Fatalf("expected standard fallback, got %s", quote.Method.ID)
	}
	// 500 × 5.0 × 1.0 = 2500.
	if !quote.Cost.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("expected 2500, got %s", quote.Cost)
	}
}

func TestCalculateRoundsToWholeAmount(t *testing.T) {
	t.Parallel()

	// greater-accra standard: 75 × 1.2 = 90 exactly; eastern × 1.7
	// central base exercises a fractional product.
	quote := Calculate(lines(1, 100), "central", "standard", DefaultConfig(), testNow)
	if quote.Cost.Exponent() < 0 {
		t.Fatalf("expected whole amount, got %s", quote.Cost)
	}
}

func TestEstimatedDelivery(t *testing.T) {
	t.Parallel()

	// Nearby zone: standard delivers in its base three days.
	quote := Calculate(lines(1, 100), "accra", "standard", DefaultConfig(), testNow)
	if got := quote.EstimatedDelivery; !got.Equal(testNow.AddDate(0, 0, 3)) {
		t.Fatalf("unexpected delivery date: %s", got)
	}

	// Remote zone (multiplier > 2) adds two days.
	quote = Calculate(lines(1, 100), "northern", "express", DefaultConfig(), testNow)
	if got := quote.EstimatedDelivery; !got.Equal(testNow.AddDate(0, 0, 3)) {
		t.Fatalf("unexpected remote delivery date: %s", got)
	}
}

func TestOptionsPricesEveryMethod(t *testing.T) {
	t.Parallel()

	options := Options("accra", testNow)
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}
	want := map[string]int64{"standard": 50, "express": 125, "overnight": 200}
	for _, opt := range options {
		if !opt.Cost.Equal(decimal.NewFromInt(want[opt.Method.ID])) {
			t.Fatalf("method %s: expected %d, got %s", opt.Method.ID, want[opt.Method.ID], opt.Cost)
		}
	}
}

func TestZoneTablesComplete(t *testing.T) {
	t.Parallel()

	if len(Zones()) != 10 {
		t.Fatalf("expected 10 zones, got %d", len(Zones()))
	}
	if ZoneByID("volta").BaseCost.IsZero() {
		t.Fatal("expected volta zone populated")
	}
}
