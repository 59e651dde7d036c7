package checkout

import "github.com/netyark/storefront-backend/internal/checkout"

// PreviewRequest computes totals for the session's cart without
// submitting anything.
type PreviewRequest struct {
	Zone   string `json:"zone" validate:"required"`
	Method string `json:"method" validate:"required"`
}

// CustomerRequest is the checkout contact block.
type CustomerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
}

// ShippingRequest is the checkout destination block.
type ShippingRequest struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Region  string `json:"region" validate:"required"`
	Zone    string `json:"zone" validate:"required"`
	Method  string `json:"method" validate:"required"`
}

// PlaceOrderRequest submits the session's cart as an order.
type PlaceOrderRequest struct {
	Customer      CustomerRequest `json:"customer" validate:"required"`
	Shipping      ShippingRequest `json:"shipping" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
}

func (r PlaceOrderRequest) customer() checkout.Customer {
	return checkout.Customer{
		FirstName: r.Customer.FirstName,
		LastName:  r.Customer.LastName,
		Email:     r.Customer.Email,
		Phone:     r.Customer.Phone,
	}
}

func (r PlaceOrderRequest) address() checkout.Address {
	return checkout.Address{
		Address: r.Shipping.Address,
		City:    r.Shipping.City,
		Region:  r.Shipping.Region,
		Zone:    r.Shipping.Zone,
		Method:  r.Shipping.Method,
	}
}
