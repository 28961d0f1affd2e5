package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Prices are whole IQD units, not fractional cents.
type Product struct {
	ID                uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug              string         `gorm:"column:slug;type:text;not null;uniqueIndex"`
	Name              string         `gorm:"column:name;type:text;not null"`
	Brand             string         `gorm:"column:brand;type:text;not null"`
	Category          string         `gorm:"column:category;type:text;not null;index:products_category_idx"`
	Subcategory       string         `gorm:"column:subcategory;type:text;not null"`
	Description       string         `gorm:"column:description;type:text;not null"`
	Price             int64          `gorm:"column:price;not null"`
	OriginalPrice     *int64         `gorm:"column:original_price"`
	Currency          string         `gorm:"column:currency;type:text;not null;default:'IQD'"`
	Images            []string       `gorm:"column:images;type:jsonb;serializer:json"`
	Thumbnail         string         `gorm:"column:thumbnail;type:text;not null"`
	Rating            float64        `gorm:"column:rating;not null;default:0"`
	ReviewCount       int            `gorm:"column:review_count;not null;default:0"`
	Stock             int            `gorm:"column:stock;not null;default:0"`
	LowStockThreshold int            `gorm:"column:low_stock_threshold;not null;default:10"`
	IsNew             bool           `gorm:"column:is_new;not null;default:false"`
	IsBestSeller      bool           `gorm:"column:is_best_seller;not null;default:false"`
	Specifications    map[string]any `gorm:"column:specifications;type:jsonb;serializer:json"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
