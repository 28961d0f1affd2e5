package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is the immutable product snapshot embedded into an order.
type OrderLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal int64     `json:"line_total"`
	Thumbnail string    `json:"thumbnail,omitempty"`
}

// ShippingAddress is stored as a jsonb snapshot on the order.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	District string `json:"district,omitempty"`
	Details  string `json:"details,omitempty"`
}

// Order captures a checkout result with its applied coupon, if any.
type Order struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          uuid.UUID        `gorm:"column:user_id;type:uuid;not null;index:orders_user_id_idx"`
	Status          string           `gorm:"column:status;type:text;not null;default:'pending'"`
	Subtotal        int64            `gorm:"column:subtotal;not null"`
	Discount        int64            `gorm:"column:discount;not null;default:0"`
	Total           int64            `gorm:"column:total;not null"`
	CouponCode      *string          `gorm:"column:coupon_code"`
	Items           []OrderLine      `gorm:"column:items;type:jsonb;serializer:json"`
	ShippingAddress *ShippingAddress `gorm:"column:shipping_address;type:jsonb;serializer:json"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
