// Package storefront holds the client-side cart and wishlist stores. Each
// store keeps one in-memory collection that is persisted to on-device state
// files while the visitor is anonymous and reconciled against the
// account-scoped REST resource once a session exists.
package storefront

// Product is the catalog view the stores consume when adding items. It is a
// subset of the server's product payload; callers fill what they have.
type Product struct {
	ID            string
	Name          string
	Slug          string
	Brand         string
	Category      string
	Price         int64
	OriginalPrice *int64
	Image         string
	Rating        float64
}

// CartItem is one product-plus-quantity line in the cart collection.
// Quantity is at least 1 while the item exists; dropping to 0 removes the
// line instead of keeping a zero-quantity row.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
	Slug     string `json:"slug"`
}

// WishlistItem is one saved product. An ID appears at most once in the
// collection.
type WishlistItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	OriginalPrice *int64  `json:"original_price,omitempty"`
	Image         string  `json:"image"`
	Slug          string  `json:"slug"`
	Brand         string  `json:"brand"`
	Rating        float64 `json:"rating"`
	Category      string  `json:"category"`
}

func cartItemFrom(p Product) CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: 1,
		Image:    p.Image,
		Slug:     p.Slug,
	}
}

func wishlistItemFrom(p Product) WishlistItem {
	return WishlistItem{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Slug:          p.Slug,
		Brand:         p.Brand,
		Rating:        p.Rating,
		Category:      p.Category,
	}
}
