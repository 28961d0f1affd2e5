package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"
)

// Coupon is a checkout discount code. Value is a percentage (0-100) for
// percentage coupons and a whole IQD amount for fixed coupons.
type Coupon struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code          string     `gorm:"column:code;type:text;not null;uniqueIndex"`
	Type          string     `gorm:"column:type;type:text;not null"`
	Value         int64      `gorm:"column:value;not null"`
	MinOrderTotal int64      `gorm:"column:min_order_total;not null;default:0"`
	MaxUses       int        `gorm:"column:max_uses;not null;default:0"`
	UsedCount     int        `gorm:"column:used_count;not null;default:0"`
	Active        bool       `gorm:"column:active;not null;default:true"`
	ExpiresAt     *time.Time `gorm:"column:expires_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
