package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer review, at most one per user per product.
type Review struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;index:reviews_product_id_idx;uniqueIndex:reviews_product_user_key"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:reviews_product_user_key"`
	Rating    int       `gorm:"column:rating;not null"`
	Comment   *string   `gorm:"column:comment"`
	Images    []string  `gorm:"column:images;type:jsonb;serializer:json"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
