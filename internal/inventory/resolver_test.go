package inventory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/netyark/storefront-backend/internal/catalog"
)

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func product(opts func(*catalog.Product)) *catalog.Product {
	p := &catalog.Product{ID: "p1", Name: "Widget", Price: decimal.NewFromInt(10)}
	if opts != nil {
		opts(p)
	}
	return p
}

func TestResolveStatusStringWins(t *testing.T) {
	t.Parallel()

	// An explicit out-of-stock status overrides a positive count.
	p := product(func(p *catalog.Product) {
		p.StockStatus = strPtr("out-of-stock")
		p.InStock = boolPtr(true)
		p.Stock = intPtr(50)
	})
	avail := Resolve(p)
	if avail.State != "out-of-stock" {
		t.Fatalf("expected out-of-stock, got %s", avail.State)
	}

	p = product(func(p *catalog.Product) {
		p.StockStatus = strPtr("in-stock")
		p.InStock = boolPtr(false)
		p.Stock = intPtr(0)
	})
	if avail := Resolve(p); avail.State != "in-stock" {
		t.Fatalf("expected in-stock, got %s", avail.State)
	}
}

func TestResolveBooleanBeatsCount(t *testing.T) {
	t.Parallel()

	p := product(func(p *catalog.Product) {
		p.InStock = boolPtr(false)
		p.Stock = intPtr(10)
	})
	if avail := Resolve(p); avail.State != "out-of-stock" {
		t.Fatalf("expected out-of-stock, got %s", avail.State)
	}
}

func TestResolveCountFallback(t *testing.T) {
	t.Parallel()

	if avail := Resolve(product(func(p *catalog.Product) { p.Stock = intPtr(3) })); avail.State != "in-stock" {
		t.Fatalf("expected in-stock for positive count, got %s", avail.State)
	}
	if avail := Resolve(product(func(p *catalog.Product) { p.Stock = intPtr(0) })); avail.State != "out-of-stock" {
		t.Fatalf("expected out-of-stock for zero count, got %s", avail.State)
	}
	// No stock fields at all resolves to a zero count.
	if avail := Resolve(product(nil)); avail.State != "out-of-stock" || avail.Count != 0 {
		t.Fatalf("expected out-of-stock/0, got %s/%d", avail.State, avail.Count)
	}
}

func TestCheckMissingProduct(t *testing.T) {
	t.Parallel()

	res := Check(nil, 1, DefaultLowStockThreshold)
	if res.Available {
		t.Fatal("expected unavailable for missing product")
	}
	if res.Reason != ReasonNotFound {
		t.Fatalf("unexpected reason: %q", res.Reason)
	}
}

func TestCheckOutOfStock(t *testing.T) {
	t.Parallel()

	p := product(func(p *catalog.Product) { p.InStock = boolPtr(false) })
	res := Check(p, 1, DefaultLowStockThreshold)
	if res.Available {
		t.Fatal("expected unavailable")
	}
	if res.Reason != ReasonOutOfStock {
		t.Fatalf("unexpected reason: %q", res.Reason)
	}
}

func TestCheckInsufficientStock(t *testing.T) {
	t.Parallel()

	p := product(func(p *catalog.Product) { p.Stock = intPtr(3) })
	res := Check(p, 5, DefaultLowStockThreshold)
	if res.Available {
		t.Fatal("expected unavailable")
	}
	if res.Reason != ReasonInsufficient {
		t.Fatalf("unexpected reason: %q", res.Reason)
	}
	if res.StockCount != 3 {
		t.Fatalf("expected reported count 3, got %d", res.StockCount)
	}
}

func TestCheckAvailableAndLowStock(t *testing.T) {
	t.Parallel()

	p := product(func(p *catalog.Product) { p.Stock = intPtr(4) })
	res := Check(p, 2, DefaultLowStockThreshold)
	if !res.Available {
		t.Fatalf("expected available, got reason %q", res.Reason)
	}
	if !res.LowStock {
		t.Fatal("expected low stock flag for count 4")
	}

	p = product(func(p *catalog.Product) { p.Stock = intPtr(6) })
	if res := Check(p, 2, DefaultLowStockThreshold); res.LowStock {
		t.Fatal("did not expect low stock flag for count 6")
	}
}

func TestCheckZeroQuantityTreatedAsOne(t *testing.T) {
	t.Parallel()

	p := product(func(p *catalog.Product) { p.Stock = intPtr(1) })
	res := Check(p, 0, DefaultLowStockThreshold)
	if !res.Available {
		t.Fatalf("expected available, got reason %q", res.Reason)
	}
}
