package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/netyark/storefront-backend/internal/cart"
	"github.com/netyark/storefront-backend/internal/orders"
	"github.com/netyark/storefront-backend/internal/shipping"
	pkgerrors "github.com/netyark/storefront-backend/pkg/errors"
)

// Customer is the contact block collected at checkout.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Address is the destination block collected at checkout.
type Address struct {
	Address string
	City    string
	Region  string
	Zone    string
	Method  string
}

// Totals breaks the payable amount down for display and for the order
// payload.
type Totals struct {
	Subtotal          decimal.Decimal
	Shipping          decimal.Decimal
	Tax               decimal.Decimal
	Total             decimal.Decimal
	EstimatedDelivery time.Time
}

// Draft pairs the computed totals with the upstream-ready payload.
type Draft struct {
	Totals  Totals
	Payload orders.SubmitOrderRequest
}

// Composer derives order totals from a cart and the selected shipping.
type Composer struct {
	taxRate     decimal.Decimal
	shippingCfg shipping.Config
}

// NewComposer builds a composer with the given tax rate and shipping
// constants.
func NewComposer(taxRate decimal.Decimal, shippingCfg shipping.Config) *Composer {
	return &Composer{taxRate: taxRate, shippingCfg: shippingCfg}
}

// Totals computes subtotal, shipping, tax, and total for the cart.
// tax = subtotal × rate; total = subtotal + shipping + tax.
func (c *Composer) Totals(lines []cart.LineItem, zoneID, methodID string, now time.Time) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	subtotal := cart.Cart{Lines: lines}.Subtotal()
	quote := shipping.Calculate(quoteLines(lines), zoneID, methodID, c.shippingCfg, now)
	tax := subtotal.Mul(c.taxRate)

	return Totals{
		Subtotal:          subtotal,
		Shipping:          quote.Cost,
		Tax:               tax,
		Total:             subtotal.Add(quote.Cost).Add(tax),
		EstimatedDelivery: quote.EstimatedDelivery,
	}, nil
}

// Compose validates the cart and assembles the submission payload.
// Line prices are intentionally omitted from the payload; the upstream
// reprices from its own catalog.
func (c *Composer) Compose(lines []cart.LineItem, customer Customer, addr Address, paymentMethod string, now time.Time) (*Draft, error) {
	totals, err := c.Totals(lines, addr.Zone, addr.Method, now)
	if err != nil {
		return nil, err
	}

	items := make([]orders.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, orders.OrderItem{
			Product:  line.ProductID,
			Quantity: line.Quantity,
		})
	}

	zone := shipping.ZoneByID(addr.Zone)
	method := shipping.MethodByID(addr.Method)

	return &Draft{
		Totals: totals,
		Payload: orders.SubmitOrderRequest{
			Products: items,
			Total:    totals.Total.InexactFloat64(),
			Customer: orders.CustomerPayload{
				FirstName: customer.FirstName,
				LastName:  customer.LastName,
				Email:     customer.Email,
				Phone:     customer.Phone,
			},
			Shipping: orders.ShippingPayload{
				Address: addr.Address,
				City:    addr.City,
				Region:  addr.Region,
				Zone:    zone.ID,
				Method:  method.ID,
			},
			PaymentMethod: paymentMethod,
		},
	}, nil
}

func quoteLines(lines []cart.LineItem) []shipping.QuoteLine {
	out := make([]shipping.QuoteLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, shipping.QuoteLine{
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}
	return out
}
