package orders

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	cartpkg "github.com/fishweb-iq/fishweb-backend/internal/cart"
	"github.com/fishweb-iq/fishweb-backend/internal/coupons"
	products "github.com/fishweb-iq/fishweb-backend/internal/products"
	"github.com/fishweb-iq/fishweb-backend/pkg/config"
	"github.com/fishweb-iq/fishweb-backend/pkg/db"
	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrdersTestClient(t *testing.T) *db.Client {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: "sqlite",
		DSN:    "file::memory:?cache=shared",
	}, nil)
	require.NoError(t, err)

	ddls := []string{`
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  brand TEXT NOT NULL,
  category TEXT NOT NULL,
  subcategory TEXT NOT NULL,
  description TEXT NOT NULL,
  price INTEGER NOT NULL,
  original_price INTEGER,
  currency TEXT NOT NULL DEFAULT 'IQD',
  images TEXT,
  thumbnail TEXT NOT NULL,
  rating REAL NOT NULL DEFAULT 0,
  review_count INTEGER NOT NULL DEFAULT 0,
  stock INTEGER NOT NULL DEFAULT 0,
  low_stock_threshold INTEGER NOT NULL DEFAULT 10,
  is_new INTEGER NOT NULL DEFAULT 0,
  is_best_seller INTEGER NOT NULL DEFAULT 0,
  specifications TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS cart_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (user_id, product_id)
);`, `
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
);`, `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  subtotal INTEGER NOT NULL,
  discount INTEGER NOT NULL DEFAULT 0,
  total INTEGER NOT NULL,
  coupon_code TEXT,
  items TEXT,
  shipping_address TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`}
	for _, ddl := range ddls {
		require.NoError(t, client.DB().Exec(ddl).Error)
	}
	for _, table := range []string{"products", "cart_items", "coupons", "orders"} {
		require.NoError(t, client.DB().Exec("DELETE FROM "+table).Error)
	}
	return client
}

type fakeIdempotencyStore struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{keys: map[string]bool{}}
}

func (f *fakeIdempotencyStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keys[key] {
		return false, nil
	}
	f.keys[key] = true
	return true, nil
}

func (f *fakeIdempotencyStore) IdempotencyKey(scope, id string) string {
	return fmt.Sprintf("fw:idempotency:%s:%s", scope, id)
}

func newOrdersService(t *testing.T, client *db.Client, store idempotencyStore) Service {
	t.Helper()

	conn := client.DB()
	couponRepo := coupons.NewRepository(conn)
	couponSvc, err := coupons.NewService(couponRepo)
	require.NoError(t, err)

	svc, err := NewService(ServiceParams{
		DB:          client,
		OrderRepo:   NewRepository(conn),
		CartRepo:    cartpkg.NewRepository(conn),
		ProductRepo: products.NewRepository(conn),
		CouponRepo:  couponRepo,
		Coupons:     couponSvc,
		Idempotency: store,
		Checkout:    config.CheckoutConfig{IdempotencyTTL: time.Hour},
	})
	require.NoError(t, err)
	return svc
}

func seedProduct(t *testing.T, client *db.Client, price int64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:          uuid.New(),
		Slug:        fmt.Sprintf("order-product-%s", uuid.NewString()),
		Name:        "Order Product",
		Brand:       "AquaOne",
		Category:    "equipment",
		Subcategory: "heaters",
		Description: "desc",
		Price:       price,
		Currency:    "IQD",
		Images:      []string{},
		Thumbnail:   "thumb.jpg",
		Stock:       stock,
	}
	require.NoError(t, client.DB().Create(product).Error)
	return product
}

func seedCartItem(t *testing.T, client *db.Client, userID, productID uuid.UUID, qty int) {
	t.Helper()
	item := &models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	}
	require.NoError(t, client.DB().Create(item).Error)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	client := setupOrdersTestClient(t)
	svc := newOrdersService(t, client, newFakeIdempotencyStore())

	userID := uuid.New()
	product := seedProduct(t, client, 25000, 10)
	seedCartItem(t, client, userID, product.ID, 2)

	order, err := svc.Checkout(context.Background(), userID, CheckoutInput{
		ShippingAddress: models.ShippingAddress{FullName: "Ahmed", Phone: "0770", City: "Baghdad"},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, order.Status)
	assert.EqualValues(t, 50000, order.Subtotal)
	assert.EqualValues(t, 50000, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	var remaining int64
	require.NoError(t, client.DB().Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&remaining).Error)
	assert.Zero(t, remaining, "cart must be cleared after checkout")

	reloaded, err := products.NewRepository(client.DB()).FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, reloaded.Stock)
}

func TestCheckoutAppliesCoupon(t *testing.T) {
	client := setupOrdersTestClient(t)
	svc := newOrdersService(t, client, newFakeIdempotencyStore())

	userID := uuid.New()
	product := seedProduct(t, client, 100000, 5)
	seedCartItem(t, client, userID, product.ID, 1)

	coupon := &models.Coupon{
		ID:     uuid.New(),
		Code:   "FISH10",
		Type:   models.CouponTypePercentage,
		Value:  10,
		Active: true,
	}
	require.NoError(t, client.DB().Create(coupon).Error)

	code := "FISH10"
	order, err := svc.Checkout(context.Background(), userID, CheckoutInput{CouponCode: &code})
	require.NoError(t, err)

	assert.EqualValues(t, 10000, order.Discount)
	assert.EqualValues(t, 90000, order.Total)
	require.NotNil(t, order.CouponCode)
	assert.Equal(t, "FISH10", *order.CouponCode)

	reloaded, err := coupons.NewRepository(client.DB()).FindByCode(context.Background(), "FISH10")
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.UsedCount)
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	client := setupOrdersTestClient(t)
	svc := newOrdersService(t, client, newFakeIdempotencyStore())

	userID := uuid.New()
	product := seedProduct(t, client, 10000, 1)
	seedCartItem(t, client, userID, product.ID, 3)

	_, err := svc.Checkout(context.Background(), userID, CheckoutInput{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())

	// Cart and stock must be untouched after the rollback.
	var remaining int64
	require.NoError(t, client.DB().Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	reloaded, err := products.NewRepository(client.DB()).FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Stock)
}

func TestCheckoutEmptyCart(t *testing.T) {
	client := setupOrdersTestClient(t)
	svc := newOrdersService(t, client, newFakeIdempotencyStore())

	_, err := svc.Checkout(context.Background(), uuid.New(), CheckoutInput{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCheckoutIdempotencyKeyRejectsReplay(t *testing.T) {
	client := setupOrdersTestClient(t)
	svc := newOrdersService(t, client, newFakeIdempotencyStore())

	userID := uuid.New()
	product := seedProduct(t, client, 10000, 10)
	seedCartItem(t, client, userID, product.ID, 1)

	_, err := svc.Checkout(context.Background(), userID, CheckoutInput{IdempotencyKey: "req-1"})
	require.NoError(t, err)

	seedCartItem(t, client, userID, product.ID, 1)
	_, err = svc.Checkout(context.Background(), userID, CheckoutInput{IdempotencyKey: "req-1"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeIdempotency, typed.Code())
}

func TestListOrdersNewestFirst(t *testing.T) {
	client := setupOrdersTestClient(t)
	svc := newOrdersService(t, client, newFakeIdempotencyStore())

	userID := uuid.New()
	for i, createdAt := range []time.Time{
		time.Now().UTC().Add(-2 * time.Hour),
		time.Now().UTC().Add(-1 * time.Hour),
	} {
		order := &models.Order{
			ID:        uuid.New(),
			UserID:    userID,
			Status:    StatusPending,
			Subtotal:  int64(1000 * (i + 1)),
			Total:     int64(1000 * (i + 1)),
			Items:     []models.OrderLine{},
			CreatedAt: createdAt,
		}
		require.NoError(t, client.DB().Create(order).Error)
	}

	rows, err := svc.ListOrders(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].CreatedAt.After(rows[1].CreatedAt))
}
