package wishlist

import (
	"time"

	products "github.com/fishweb-iq/fishweb-backend/internal/products"
	"github.com/google/uuid"
)

// WishlistItemDTO wraps the product included in a wishlist row.
type WishlistItemDTO struct {
	Product products.ProductDTO `json:"product"`
	AddedAt time.Time           `json:"added_at"`
}

// WishlistDTO is the full favorites view returned to clients.
type WishlistDTO struct {
	Items      []WishlistItemDTO `json:"items"`
	ProductIDs []uuid.UUID       `json:"product_ids"`
}
