package products

import (
	"time"

	"github.com/google/uuid"

	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
)

// Sort keys accepted by the product listing.
const (
	SortFeatured  = "featured"
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
)

// ProductDTO is the catalog entry shape returned to clients.
type ProductDTO struct {
	ID                uuid.UUID      `json:"id"`
	Slug              string         `json:"slug"`
	Name              string         `json:"name"`
	Brand             string         `json:"brand"`
	Category          string         `json:"category"`
	Subcategory       string         `json:"subcategory"`
	Description       string         `json:"description"`
	Price             int64          `json:"price"`
	OriginalPrice     *int64         `json:"original_price,omitempty"`
	Currency          string         `json:"currency"`
	Images            []string       `json:"images"`
	Thumbnail         string         `json:"thumbnail"`
	Rating            float64        `json:"rating"`
	ReviewCount       int            `json:"review_count"`
	InStock           bool           `json:"in_stock"`
	Stock             int            `json:"stock"`
	LowStock          bool           `json:"low_stock"`
	IsNew             bool           `json:"is_new"`
	IsBestSeller      bool           `json:"is_best_seller"`
	Specifications    map[string]any `json:"specifications,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// ProductPageDTO is a cursor-paginated catalog slice.
type ProductPageDTO struct {
	Items      []ProductDTO `json:"items"`
	NextCursor string       `json:"next_cursor,omitempty"`
	Total      int          `json:"total"`
}

// ListProductsInput collects catalog filters from the listing endpoint.
type ListProductsInput struct {
	Category    string
	Subcategory string
	Search      string
	Sort        string
	BestSellers bool
	NewArrivals bool
	Cursor      string
	Limit       int
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Slug           string
	Name           string
	Brand          string
	Category       string
	Subcategory    string
	Description    string
	Price          int64
	OriginalPrice  *int64
	Images         []string
	Thumbnail      string
	Stock          int
	IsNew          bool
	IsBestSeller   bool
	Specifications map[string]any
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	Name           *string
	Brand          *string
	Category       *string
	Subcategory    *string
	Description    *string
	Price          *int64
	OriginalPrice  *int64
	Images         *[]string
	Thumbnail      *string
	Stock          *int
	IsNew          *bool
	IsBestSeller   *bool
	Specifications *map[string]any
}

// FromModel maps a persisted product onto its transport shape.
func FromModel(p *models.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID,
		Slug:           p.Slug,
		Name:           p.Name,
		Brand:          p.Brand,
		Category:       p.Category,
		Subcategory:    p.Subcategory,
		Description:    p.Description,
		Price:          p.Price,
		OriginalPrice:  p.OriginalPrice,
		Currency:       p.Currency,
		Images:         append([]string(nil), p.Images...),
		Thumbnail:      p.Thumbnail,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		InStock:        p.Stock > 0,
		Stock:          p.Stock,
		LowStock:       p.Stock > 0 && p.Stock <= p.LowStockThreshold,
		IsNew:          p.IsNew,
		IsBestSeller:   p.IsBestSeller,
		Specifications: p.Specifications,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
