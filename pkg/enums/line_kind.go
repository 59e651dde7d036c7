package enums

import "fmt"

// LineKind discriminates the two cart line variants. Retail lines accept
// any quantity of at least one; wholesale lines enforce the product MOQ.
type LineKind string

const (
	LineKindRetail    LineKind = "retail"
	LineKindWholesale LineKind = "wholesale"
)

var validLineKinds = []LineKind{
	LineKindRetail,
	LineKindWholesale,
}

// IsValid reports whether the value matches the canonical line kind enum.
func (l LineKind) IsValid() bool {
	for _, candidate := range validLineKinds {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLineKind converts the raw string to LineKind.
func ParseLineKind(value string) (LineKind, error) {
	for _, candidate := range validLineKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid line kind %q", value)
}
