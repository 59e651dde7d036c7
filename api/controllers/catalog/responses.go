package catalog

import (
	"github.com/netyark/storefront-backend/internal/catalog"
	"github.com/netyark/storefront-backend/internal/inventory"
)

// ProductResponse is the normalized shape the storefront exposes for a
// product, regardless of which id or stock fields the upstream supplied.
type ProductResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Price          float64  `json:"price"`
	WholesalePrice *float64 `json:"wholesale_price,omitempty"`
	Image          string   `json:"image,omitempty"`
	Category       string   `json:"category,omitempty"`
	IsWholesale    bool     `json:"is_wholesale"`
	MinOrderQty    int      `json:"min_order_qty"`
	Stock          Stock    `json:"stock"`
}

type Stock struct {
	State    string `json:"state"`
	Count    int    `json:"count"`
	LowStock bool   `json:"low_stock"`
}

func toProductResponse(p *catalog.Product, lowStockThreshold int) ProductResponse {
	avail := inventory.Resolve(p)
	resp := ProductResponse{
		ID:          p.Key(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Image:       p.Image,
		Category:    catalog.MapCategory(p.Category),
		IsWholesale: p.IsWholesale,
		MinOrderQty: p.EffectiveMOQ(),
		Stock: Stock{
			State:    string(avail.State),
			Count:    avail.Count,
			LowStock: avail.Count > 0 && avail.Count <= lowStockThreshold,
		},
	}
	if p.WholesalePrice != nil {
		wp := p.WholesalePrice.InexactFloat64()
		resp.WholesalePrice = &wp
	}
	return resp
}

func toProductResponses(products []catalog.Product, lowStockThreshold int) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i], lowStockThreshold))
	}
	return out
}
