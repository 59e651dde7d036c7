package enums

import "fmt"

// StockState is the normalized availability decision derived once at
// the catalog boundary from the upstream's competing stock fields.
type StockState string

const (
	StockStateInStock    StockState = "in-stock"
	StockStateOutOfStock StockState = "out-of-stock"
)

var validStockStates = []StockState{
	StockStateInStock,
	StockStateOutOfStock,
}

// IsValid reports whether the value matches the canonical stock state enum.
func (s StockState) IsValid() bool {
	for _, candidate := range validStockStates {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockState converts the raw string to StockState.
func ParseStockState(value string) (StockState, error) {
	for _, candidate := range validStockStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock state %q", value)
}
