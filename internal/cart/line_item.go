package cart

import (
	"github.com/shopspring/decimal"

	"github.com/netyark/storefront-backend/pkg/enums"
)

// LineItem is one cart entry. Name, price, and image are snapshots
// taken when the product was added; catalog edits after that point do
// not retroactively reprice the line.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
	Kind      enums.LineKind  `json:"kind"`
	MOQ       int             `json:"moq"`
}

// MinQuantity is the floor a manual quantity edit may not go below.
func (l LineItem) MinQuantity() int {
	if l.Kind == enums.LineKindWholesale && l.MOQ > 1 {
		return l.MOQ
	}
	return 1
}

// Subtotal is the snapshot price times quantity.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ordered sequence of line items. Insertion order matters
// for display only; totals are order-independent.
type Cart struct {
	Lines []LineItem `json:"lines"`
}

// Subtotal sums price × quantity over all lines.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// ItemCount sums line quantities. It differs from len(Lines), which
// counts distinct products.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Find returns the index of the line for the given product id, or -1.
func (c Cart) Find(productID string) int {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}
