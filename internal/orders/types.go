package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
)

// Order lifecycle states.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// CheckoutInput is the payload required to place an order from the cart.
type CheckoutInput struct {
	CouponCode      *string
	ShippingAddress models.ShippingAddress
	IdempotencyKey  string
}

// OrderDTO is the transport shape of a placed order.
type OrderDTO struct {
	ID              uuid.UUID               `json:"id"`
	Status          string                  `json:"status"`
	Subtotal        int64                   `json:"subtotal"`
	Discount        int64                   `json:"discount"`
	Total           int64                   `json:"total"`
	CouponCode      *string                 `json:"coupon_code,omitempty"`
	Items           []models.OrderLine      `json:"items"`
	ShippingAddress *models.ShippingAddress `json:"shipping_address,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

// FromModel maps a persisted order onto its transport shape.
func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		ID:              o.ID,
		Status:          o.Status,
		Subtotal:        o.Subtotal,
		Discount:        o.Discount,
		Total:           o.Total,
		CouponCode:      o.CouponCode,
		Items:           append([]models.OrderLine(nil), o.Items...),
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
	}
}
