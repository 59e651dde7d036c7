package cart

// AddItemRequest adds a retail product to the cart. Quantity defaults
// to 1 when omitted.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// AddWholesaleItemRequest adds a wholesale product. Quantity defaults
// to the product's minimum order quantity when omitted.
type AddWholesaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// SetQuantityRequest overwrites a line's quantity. Zero removes the
// line.
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}
