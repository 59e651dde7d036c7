package shipping

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	appconfig "github.com/netyark/storefront-backend/pkg/config"
)

// Config carries the tunable shipping constants. The defaults mirror
// the storefront's historical hard-coded values.
type Config struct {
	FreeThreshold       decimal.Decimal
	ItemWeightKg        decimal.Decimal
	HeavyThresholdKg    decimal.Decimal
	HeavySurchargePerKg decimal.Decimal
}

// DefaultConfig returns the storefront defaults: free standard shipping
// from 500, half a kilogram per unit, surcharge of 20 per kilogram over
// five.
func DefaultConfig() Config {
	return Config{
		FreeThreshold:       decimal.NewFromInt(500),
		ItemWeightKg:        decimal.RequireFromString("0.5"),
		HeavyThresholdKg:    decimal.NewFromInt(5),
		HeavySurchargePerKg: decimal.NewFromInt(20),
	}
}

// ConfigFrom parses the environment-sourced shipping settings.
func ConfigFrom(cfg appconfig.ShippingConfig) (Config, error) {
	free, err := decimal.NewFromString(cfg.FreeThreshold)
	if err != nil {
		return Config{}, fmt.Errorf("parse free threshold: %w", err)
	}
	surcharge, err := decimal.NewFromString(cfg.HeavySurchargeKg)
	if err != nil {
		return Config{}, fmt.Errorf("parse heavy surcharge: %w", err)
	}
	return Config{
		FreeThreshold:       free,
		ItemWeightKg:        decimal.NewFromFloat(cfg.ItemWeightKg),
		HeavyThresholdKg:    decimal.NewFromFloat(cfg.HeavyThresholdKg),
		HeavySurchargePerKg: surcharge,
	}, nil
}

// QuoteLine is the slice of a cart the calculator needs.
type QuoteLine struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Quote is a cost and delivery estimate for one zone/method pairing.
type Quote struct {
	Zone              Zone
	Method            Method
	Cost              decimal.Decimal
	EstimatedDelivery time.Time
}

// Calculate prices shipping for the given lines. It is a pure function:
// the clock is a parameter and all thresholds come from cfg.
//
// cost = base × zone multiplier × method multiplier, plus a surcharge
// for weight over the heavy threshold; subtotals at or above the free
// threshold ship free on the default method only. Unknown zones fall
// back to international, unknown methods to standard. The result is
// rounded to a whole currency amount.
func Calculate(lines []QuoteLine, zoneID, methodID string, cfg Config, now time.Time) Quote {
	zone := ZoneByID(zoneID)
	method := MethodByID(methodID)

	quote := Quote{
		Zone:              zone,
		Method:            method,
		Cost:              decimal.Zero,
		EstimatedDelivery: estimatedDelivery(zone, method, now),
	}

	if len(lines) == 0 {
		return quote
	}

	cost := zone.BaseCost.Mul(zone.Multiplier).Mul(method.CostMultiplier)

	totalQty := int64(0)
	subtotal := decimal.Zero
	for _, line := range lines {
		totalQty += int64(line.Quantity)
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	weight := cfg.ItemWeightKg.Mul(decimal.NewFromInt(totalQty))
	if weight.GreaterThan(cfg.HeavyThresholdKg) {
		cost = cost.Add(weight.Sub(cfg.HeavyThresholdKg).Mul(cfg.HeavySurchargePerKg))
	}

	if subtotal.GreaterThanOrEqual(cfg.FreeThreshold) && method.ID == DefaultMethodID {
		cost = decimal.Zero
	}

	quote.Cost = cost.Round(0)
	return quote
}

// Option is one delivery choice presented at checkout. Its cost is the
// zone/method base price, before cart weight and free-shipping rules.
type Option struct {
	Method            Method
	Cost              decimal.Decimal
	EstimatedDelivery time.Time
}

// Options lists every method priced for the given zone.
func Options(zoneID string, now time.Time) []Option {
	zone := ZoneByID(zoneID)
	options := make([]Option, 0, len(methodOrder))
	for _, method := range Methods() {
		options = append(options, Option{
			Method:            method,
			Cost:              zone.BaseCost.Mul(zone.Multiplier).Mul(method.CostMultiplier).Round(0),
			EstimatedDelivery: estimatedDelivery(zone, method, now),
		})
	}
	return options
}

func estimatedDelivery(zone Zone, method Method, now time.Time) time.Time {
	days := method.BaseDays
	if zone.Multiplier.GreaterThan(decimal.NewFromInt(2)) {
		days += 2
	}
	return now.AddDate(0, 0, days)
}
