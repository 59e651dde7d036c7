package orders

import "time"

// OrderItem is one submitted line: product reference and quantity only.
// Prices are never sent; the upstream reprices from its own catalog.
type OrderItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// CustomerPayload is the checkout contact block.
type CustomerPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ShippingPayload is the checkout destination block.
type ShippingPayload struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Zone    string `json:"zone"`
	Method  string `json:"method"`
}

// SubmitOrderRequest is the wire shape POSTed to the upstream order API.
type SubmitOrderRequest struct {
	Products      []OrderItem     `json:"products"`
	Total         float64         `json:"total"`
	Customer      CustomerPayload `json:"customer"`
	Shipping      ShippingPayload `json:"shipping"`
	PaymentMethod string          `json:"paymentMethod"`
}

// OrderRecord is the order as either the upstream returned it or as the
// storefront synthesized it after a failed submission.
type OrderRecord struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	Total          float64   `json:"total"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// upstreamOrder decodes the order document the API returns on 201.
type upstreamOrder struct {
	ID        string    `json:"_id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}
