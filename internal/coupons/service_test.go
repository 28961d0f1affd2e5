package coupons

import (
	"context"
	"testing"
	"time"

	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCouponsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS coupons (
  id TEXT PRIMARY KEY,
  code TEXT NOT NULL UNIQUE,
  type TEXT NOT NULL,
  value INTEGER NOT NULL,
  min_order_total INTEGER NOT NULL DEFAULT 0,
  max_uses INTEGER NOT NULL DEFAULT 0,
  used_count INTEGER NOT NULL DEFAULT 0,
  active INTEGER NOT NULL DEFAULT 1,
  expires_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	require.NoError(t, db.Exec("DELETE FROM coupons").Error)
	return db
}

func newCouponService(t *testing.T, db *gorm.DB) (Service, *Repository) {
	t.Helper()
	repo := NewRepository(db)
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func mustCreateCoupon(t *testing.T, db *gorm.DB, mutate func(*models.Coupon)) *models.Coupon {
	t.Helper()
	coupon := &models.Coupon{
		ID:     uuid.New(),
		Code:   "FISH10",
		Type:   models.CouponTypePercentage,
		Value:  10,
		Active: true,
	}
	if mutate != nil {
		mutate(coupon)
	}
	require.NoError(t, db.Create(coupon).Error)
	return coupon
}

func TestValidatePercentageCouponFloorsDiscount(t *testing.T) {
	db := setupCouponsTestDB(t)
	svc, _ := newCouponService(t, db)
	mustCreateCoupon(t, db, nil)

	// 10% of 25005 IQD floors to 2500.
	result, err := svc.Validate(context.Background(), "fish10", 25005)
	require.NoError(t, err)
	assert.EqualValues(t, 2500, result.Discount)
	assert.EqualValues(t, 22505, result.FinalTotal)
}

func TestValidateFixedCouponCapsAtOrderTotal(t *testing.T) {
	db := setupCouponsTestDB(t)
	svc, _ := newCouponService(t, db)
	mustCreateCoupon(t, db, func(c *models.Coupon) {
		c.Code = "FLAT5000"
		c.Type = models.CouponTypeFixed
		c.Value = 5000
	})

	result, err := svc.Validate(context.Background(), "FLAT5000", 3000)
	require.NoError(t, err)
	assert.EqualValues(t, 3000, result.Discount)
	assert.Zero(t, result.FinalTotal)
}

func TestValidateRejectsExpiredCoupon(t *testing.T) {
	db := setupCouponsTestDB(t)
	svc, _ := newCouponService(t, db)
	past := time.Now().UTC().Add(-time.Hour)
	mustCreateCoupon(t, db, func(c *models.Coupon) {
		c.Code = "OLD"
		c.ExpiresAt = &past
	})

	_, err := svc.Validate(context.Background(), "OLD", 10000)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestValidateRejectsBelowMinimum(t *testing.T) {
	db := setupCouponsTestDB(t)
	svc, _ := newCouponService(t, db)
	mustCreateCoupon(t, db, func(c *models.Coupon) {
		c.Code = "BIG"
		c.MinOrderTotal = 50000
	})

	_, err := svc.Validate(context.Background(), "BIG", 10000)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestValidateUnknownCode(t *testing.T) {
	db := setupCouponsTestDB(t)
	svc, _ := newCouponService(t, db)

	_, err := svc.Validate(context.Background(), "NOPE", 10000)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestIncrementUsageStopsAtMax(t *testing.T) {
	db := setupCouponsTestDB(t)
	_, repo := newCouponService(t, db)
	coupon := mustCreateCoupon(t, db, func(c *models.Coupon) {
		c.Code = "ONCE"
		c.MaxUses = 1
	})

	applied, err := repo.IncrementUsage(context.Background(), coupon.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.IncrementUsage(context.Background(), coupon.ID)
	require.NoError(t, err)
	assert.False(t, applied, "second use must be refused")
}

func TestCreateCouponValidation(t *testing.T) {
	db := setupCouponsTestDB(t)
	svc, _ := newCouponService(t, db)

	_, err := svc.Create(context.Background(), CreateCouponInput{
		Code:  "TOOMUCH",
		Type:  models.CouponTypePercentage,
		Value: 150,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	created, err := svc.Create(context.Background(), CreateCouponInput{
		Code:  "welcome15",
		Type:  models.CouponTypePercentage,
		Value: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, "WELCOME15", created.Code)

	_, err = svc.Create(context.Background(), CreateCouponInput{
		Code:  "WELCOME15",
		Type:  models.CouponTypePercentage,
		Value: 15,
	})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}
