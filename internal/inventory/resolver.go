package inventory

import (
	"github.com/netyark/storefront-backend/internal/catalog"
	"github.com/netyark/storefront-backend/pkg/enums"
)

// DefaultLowStockThreshold marks products worth a UI warning. It gates
// nothing; availability is decided separately.
const DefaultLowStockThreshold = 5

// Reason strings are part of the storefront contract and surface
// verbatim to the user.
const (
	ReasonNotFound     = "Product not found"
	ReasonOutOfStock   = "Out of stock"
	ReasonInsufficient = "Insufficient stock"
)

// Availability is the single normalized stock decision derived from a
// product's competing representations.
type Availability struct {
	State enums.StockState
	Count int
}

// Resolve applies the precedence rules exactly once:
// an explicit stockStatus wins, then the legacy inStock boolean, then
// the numeric count. A product marked in-stock with a zero count still
// resolves to in-stock here; the quantity check in Check is what
// ultimately rejects it. That precedence is suspect but load-bearing
// for upstream records that only maintain the status flag.
func Resolve(p *catalog.Product) Availability {
	count := p.CountOnHand()

	if p.StockStatus != nil && *p.StockStatus != "" {
		state := enums.StockStateOutOfStock
		if *p.StockStatus == string(enums.StockStateInStock) {
			state = enums.StockStateInStock
		}
		return Availability{State: state, Count: count}
	}

	if p.InStock != nil {
		state := enums.StockStateOutOfStock
		if *p.InStock {
			state = enums.StockStateInStock
		}
		return Availability{State: state, Count: count}
	}

	state := enums.StockStateOutOfStock
	if count > 0 {
		state = enums.StockStateInStock
	}
	return Availability{State: state, Count: count}
}

// CheckResult is the three-way outcome of an inventory check.
type CheckResult struct {
	Available  bool
	StockCount int
	LowStock   bool
	Reason     string
}

// Check decides whether the requested quantity can be fulfilled. It is
// called before every quantity-increasing cart mutation; a prior check
// is never assumed to still hold.
func Check(p *catalog.Product, requested, lowStockThreshold int) CheckResult {
	if p == nil {
		return CheckResult{Reason: ReasonNotFound}
	}
	if requested < 1 {
		requested = 1
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	availability := Resolve(p)
	if availability.State != enums.StockStateInStock {
		return CheckResult{Reason: ReasonOutOfStock}
	}
	if availability.Count < requested {
		return CheckResult{StockCount: availability.Count, Reason: ReasonInsufficient}
	}

	return CheckResult{
		Available:  true,
		StockCount: availability.Count,
		LowStock:   availability.Count <= lowStockThreshold,
	}
}
