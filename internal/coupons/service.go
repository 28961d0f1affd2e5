package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DiscountDTO is the outcome of validating a coupon against an order total.
type DiscountDTO struct {
	Code       string `json:"code"`
	Type       string `json:"type"`
	Discount   int64  `json:"discount"`
	OrderTotal int64  `json:"order_total"`
	FinalTotal int64  `json:"final_total"`
}

// CreateCouponInput holds the admin payload for a new coupon.
type CreateCouponInput struct {
	Code          string
	Type          string
	Value         int64
	MinOrderTotal int64
	MaxUses       int
	ExpiresAt     *time.Time
}

// Service exposes coupon validation and admin management.
type Service interface {
	Validate(ctx context.Context, code string, orderTotal int64) (*DiscountDTO, error)
	Create(ctx context.Context, input CreateCouponInput) (*models.Coupon, error)
	List(ctx context.Context) ([]models.Coupon, error)
	Deactivate(ctx context.Context, code string) error
}

type service struct {
	repo *Repository
}

// NewService constructs a coupon service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("coupon repository required")
	}
	return &service{repo: repo}, nil
}

// Validate checks the coupon against the order total and computes the discount.
func (s *service) Validate(ctx context.Context, code string, orderTotal int64) (*DiscountDTO, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon code is required")
	}
	if orderTotal < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order total cannot be negative")
	}

	coupon, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "coupon not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load coupon")
	}

	if !coupon.Active {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon is no longer active")
	}
	if coupon.ExpiresAt != nil && time.Now().UTC().After(*coupon.ExpiresAt) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon has expired")
	}
	if coupon.MaxUses > 0 && coupon.UsedCount >= coupon.MaxUses {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon usage limit reached")
	}
	if orderTotal < coupon.MinOrderTotal {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order total below coupon minimum")
	}

	discount := computeDiscount(coupon, orderTotal)
	return &DiscountDTO{
		Code:       coupon.Code,
		Type:       coupon.Type,
		Discount:   discount,
		OrderTotal: orderTotal,
		FinalTotal: orderTotal - discount,
	}, nil
}

// Create registers a new coupon code.
func (s *service) Create(ctx context.Context, input CreateCouponInput) (*models.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon code is required")
	}
	if input.Type != models.CouponTypePercentage && input.Type != models.CouponTypeFixed {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon type must be percentage or fixed")
	}
	if input.Value <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon value must be positive")
	}
	if input.Type == models.CouponTypePercentage && input.Value > 100 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "percentage coupons cannot exceed 100")
	}

	coupon := &models.Coupon{
		ID:            uuid.New(),
		Code:          code,
		Type:          input.Type,
		Value:         input.Value,
		MinOrderTotal: input.MinOrderTotal,
		MaxUses:       input.MaxUses,
		Active:        true,
		ExpiresAt:     input.ExpiresAt,
	}
	if err := s.repo.Create(ctx, coupon); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "coupon code already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create coupon")
	}
	return coupon, nil
}

// List returns all coupons for the admin dashboard.
func (s *service) List(ctx context.Context) ([]models.Coupon, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list coupons")
	}
	return rows, nil
}

// Deactivate switches off a coupon so it stops validating.
func (s *service) Deactivate(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "coupon code is required")
	}
	coupon, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "coupon not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load coupon")
	}
	if err := s.repo.Deactivate(ctx, coupon.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deactivate coupon")
	}
	return nil
}

// computeDiscount rounds percentage discounts down to whole IQD units and
// never discounts past the order total.
func computeDiscount(coupon *models.Coupon, orderTotal int64) int64 {
	var discount int64
	switch coupon.Type {
	case models.CouponTypePercentage:
		discount = decimal.NewFromInt(orderTotal).
			Mul(decimal.NewFromInt(coupon.Value)).
			Div(decimal.NewFromInt(100)).
			Floor().
			IntPart()
	case models.CouponTypeFixed:
		discount = coupon.Value
	}
	if discount > orderTotal {
		discount = orderTotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
