package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is the upstream catalog record. Stock is deliberately kept in
// its raw, non-normalized form here; the inventory package owns the
// precedence rules that turn these fields into one availability decision.
type Product struct {
	ID             string           `json:"id,omitempty"`
	DatabaseID     string           `json:"_id,omitempty"`
	Name           string           `json:"name"`
	Price          decimal.Decimal  `json:"price"`
	WholesalePrice *decimal.Decimal `json:"wholesalePrice,omitempty"`
	Image          string           `json:"image,omitempty"`
	Category       string           `json:"category,omitempty"`
	Description    string           `json:"description,omitempty"`
	IsWholesale    bool             `json:"isWholesale,omitempty"`
	MOQ            *int             `json:"moq,omitempty"`
	MinOrderQty    *int             `json:"minOrderQty,omitempty"`

	// Competing stock representations, none guaranteed consistent.
	StockStatus *string `json:"stockStatus,omitempty"`
	InStock     *bool   `json:"inStock,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	StockCount  *int    `json:"stockCount,omitempty"`
}

// Key returns the identity used for cart lines: the client slug when
// present, else the database-assigned id.
func (p *Product) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.DatabaseID
}

// MatchesID reports whether the given id resolves to this product under
// either identity field, compared as strings.
func (p *Product) MatchesID(id string) bool {
	if id == "" {
		return false
	}
	return p.ID == id || p.DatabaseID == id
}

// EffectiveMOQ resolves the minimum order quantity across the two field
// spellings the upstream has used. Non-wholesale products always
// answer 1.
func (p *Product) EffectiveMOQ() int {
	if !p.IsWholesale {
		return 1
	}
	if p.MOQ != nil && *p.MOQ >= 1 {
		return *p.MOQ
	}
	if p.MinOrderQty != nil && *p.MinOrderQty >= 1 {
		return *p.MinOrderQty
	}
	return 1
}

// UnitPrice returns the price snapshotted onto a cart line: the
// wholesale price for wholesale products when one is set, else retail.
func (p *Product) UnitPrice() decimal.Decimal {
	if p.IsWholesale && p.WholesalePrice != nil {
		return *p.WholesalePrice
	}
	return p.Price
}

// CountOnHand resolves the numeric stock count across the two field
// spellings, defaulting to zero when neither is present.
func (p *Product) CountOnHand() int {
	if p.Stock != nil {
		return *p.Stock
	}
	if p.StockCount != nil {
		return *p.StockCount
	}
	return 0
}

// SetCount overwrites every numeric and boolean stock field so the
// representations stay consistent after a local decrement.
func (p *Product) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	p.Stock = &count
	p.StockCount = &count
	inStock := count > 0
	p.InStock = &inStock
}
