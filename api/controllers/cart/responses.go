package cart

import (
	"github.com/netyark/storefront-backend/internal/cart"
)

type LineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
	Kind      string  `json:"kind"`
	MOQ       int     `json:"moq"`
	Subtotal  float64 `json:"subtotal"`
}

type CartResponse struct {
	CartID    string         `json:"cart_id"`
	Lines     []LineResponse `json:"lines"`
	ItemCount int            `json:"item_count"`
	Subtotal  float64        `json:"subtotal"`
}

func toCartResponse(cartID string, c cart.Cart) CartResponse {
	lines := make([]LineResponse, 0, len(c.Lines))
	for _, line := range c.Lines {
		lines = append(lines, toLineResponse(line))
	}
	return CartResponse{
		CartID:    cartID,
		Lines:     lines,
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal().InexactFloat64(),
	}
}

func toLineResponse(line cart.LineItem) LineResponse {
	return LineResponse{
		ProductID: line.ProductID,
		Name:      line.Name,
		Price:     line.Price.InexactFloat64(),
		Image:     line.Image,
		Quantity:  line.Quantity,
		Kind:      string(line.Kind),
		MOQ:       line.MOQ,
		Subtotal:  line.Subtotal().InexactFloat64(),
	}
}
