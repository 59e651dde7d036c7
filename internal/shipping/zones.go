package shipping

import "github.com/shopspring/decimal"

// Zone is static reference data for a delivery destination tier.
type Zone struct {
	ID         string
	Name       string
	BaseCost   decimal.Decimal
	Multiplier decimal.Decimal
}

// Method is static reference data for a delivery speed.
type Method struct {
	ID             string
	Name           string
	BaseDays       int
	CostMultiplier decimal.Decimal
	Description    string
}

const (
	// FallbackZoneID absorbs unknown destinations at the highest tier.
	FallbackZoneID = "international"
	// DefaultMethodID absorbs unknown methods and is the only method
	// eligible for the free-shipping override.
	DefaultMethodID = "standard"
)

var zoneOrder = []string{
	"accra",
	"greater-accra",
	"eastern",
	"central",
	"western",
	"volta",
	"northern",
	"upper-east",
	"upper-west",
	"international",
}

var zonesByID = map[string]Zone{
	"accra":         {ID: "accra", Name: "Accra Metropolitan", BaseCost: dec("50"), Multiplier: dec("1.0")},
	"greater-accra": {ID: "greater-accra", Name: "Greater Accra", BaseCost: dec("75"), Multiplier: dec("1.2")},
	"eastern":       {ID: "eastern", Name: "Eastern Region", BaseCost: dec("100"), Multiplier: dec("1.5")},
	"central":       {ID: "central", Name: "Central Region", BaseCost: dec("120"), Multiplier: dec("1.7")},
	"western":       {ID: "western", Name: "Western Region", BaseCost: dec("150"), Multiplier: dec("2.0")},
	"volta":         {ID: "volta", Name: "Volta Region", BaseCost: dec("180"), Multiplier: dec("2.2")},
	"northern":      {ID: "northern", Name: "Northern Region", BaseCost: dec("250"), Multiplier: dec("2.8")},
	"upper-east":    {ID: "upper-east", Name: "Upper East Region", BaseCost: dec("300"), Multiplier: dec("3.2")},
	"upper-west":    {ID: "upper-west", Name: "Upper West Region", BaseCost: dec("320"), Multiplier: dec("3.4")},
	"international": {ID: "international", Name: "International", BaseCost: dec("500"), Multiplier: dec("5.0")},
}

var methodOrder = []string{"standard", "express", "overnight"}

var methodsByID = map[string]Method{
	"standard":  {ID: "standard", Name: "Standard Delivery", BaseDays: 3, CostMultiplier: dec("1.0"), Description: "3-5 business days"},
	"express":   {ID: "express", Name: "Express Delivery", BaseDays: 1, CostMultiplier: dec("2.5"), Description: "1-2 business days"},
	"overnight": {ID: "overnight", Name: "Overnight Delivery", BaseDays: 1, CostMultiplier: dec("4.0"), Description: "Next business day"},
}

// ZoneByID resolves a zone, falling back to the international tier for
// unknown ids.
func ZoneByID(id string) Zone {
	if zone, ok := zonesByID[id]; ok {
		return zone
	}
	return zonesByID[FallbackZoneID]
}

// MethodByID resolves a method, falling back to standard delivery.
func MethodByID(id string) Method {
	if method, ok := methodsByID[id]; ok {
		return method
	}
	return methodsByID[DefaultMethodID]
}

// Zones lists every zone in display order.
func Zones() []Zone {
	out := make([]Zone, 0, len(zoneOrder))
	for _, id := range zoneOrder {
		out = append(out, zonesByID[id])
	}
	return out
}

// Methods lists every delivery method in display order.
func Methods() []Method {
	out := make([]Method, 0, len(methodOrder))
	for _, id := range methodOrder {
		out = append(out, methodsByID[id])
	}
	return out
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
