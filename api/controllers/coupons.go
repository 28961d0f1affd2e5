package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fishweb-iq/fishweb-backend/api/responses"
	"github.com/fishweb-iq/fishweb-backend/api/validators"
	couponsvc "github.com/fishweb-iq/fishweb-backend/internal/coupons"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
)

type validateCouponRequest struct {
	Code       string `json:"code" validate:"required"`
	OrderTotal int64  `json:"order_total" validate:"required,min=1"`
}

// CouponValidate checks a code against the caller's order total and returns
// the computed discount.
func CouponValidate(svc couponsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "coupon service unavailable"))
			return
		}

		var payload validateCouponRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		discount, err := svc.Validate(ctx, payload.Code, payload.OrderTotal)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, discount)
	}
}

type createCouponRequest struct {
	Code          string     `json:"code" validate:"required"`
	Type          string     `json:"type" validate:"required,oneof=percentage fixed"`
	Value         int64      `json:"value" validate:"required,min=1"`
	MinOrderTotal int64      `json:"min_order_total,omitempty" validate:"omitempty,min=0"`
	MaxUses       int        `json:"max_uses,omitempty" validate:"omitempty,min=0"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// AdminCreateCoupon registers a new discount code.
func AdminCreateCoupon(svc couponsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "coupon service unavailable"))
			return
		}

		var payload createCouponRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		coupon, err := svc.Create(ctx, couponsvc.CreateCouponInput{
			Code:          payload.Code,
			Type:          payload.Type,
			Value:         payload.Value,
			MinOrderTotal: payload.MinOrderTotal,
			MaxUses:       payload.MaxUses,
			ExpiresAt:     payload.ExpiresAt,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, coupon)
	}
}

// AdminListCoupons returns every coupon for the dashboard.
func AdminListCoupons(svc couponsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "coupon service unavailable"))
			return
		}

		coupons, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, coupons)
	}
}

// AdminDeactivateCoupon turns a coupon off without deleting its usage history.
func AdminDeactivateCoupon(svc couponsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "coupon service unavailable"))
			return
		}

		code := strings.TrimSpace(chi.URLParam(r, "code"))
		if err := svc.Deactivate(ctx, code); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deactivated": true})
	}
}
