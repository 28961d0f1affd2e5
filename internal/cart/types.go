package cart

import (
	"time"

	products "github.com/fishweb-iq/fishweb-backend/internal/products"
)

// CartItemDTO is one cart row joined with its product.
type CartItemDTO struct {
	Product   products.ProductDTO `json:"product"`
	Quantity  int                 `json:"quantity"`
	LineTotal int64               `json:"line_total"`
	AddedAt   time.Time           `json:"added_at"`
}

// CartDTO is the full cart view returned to clients.
type CartDTO struct {
	Items     []CartItemDTO `json:"items"`
	ItemCount int           `json:"item_count"`
	Subtotal  int64         `json:"subtotal"`
}
