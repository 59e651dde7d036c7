package enums

import "fmt"

// OrderOutcome distinguishes upstream-confirmed orders from orders the
// storefront synthesized locally after a failed submission. The two are
// never merged so a reconciliation job can tell them apart.
type OrderOutcome string

const (
	OrderOutcomeConfirmed OrderOutcome = "confirmed"
	OrderOutcomeLocalOnly OrderOutcome = "local_only"
)

var validOrderOutcomes = []OrderOutcome{
	OrderOutcomeConfirmed,
	OrderOutcomeLocalOnly,
}

// IsValid reports whether the value matches the canonical order outcome enum.
func (o OrderOutcome) IsValid() bool {
	for _, candidate := range validOrderOutcomes {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrderOutcome converts the raw string to OrderOutcome.
func ParseOrderOutcome(value string) (OrderOutcome, error) {
	for _, candidate := range validOrderOutcomes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order outcome %q", value)
}
