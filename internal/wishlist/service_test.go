package wishlist

import (
	"context"
	"fmt"
	"testing"

	products "github.com/fishweb-iq/fishweb-backend/internal/products"
	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupWishlistTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	productsDDL := `
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
);`
	wishlistDDL := `
CREATE TABLE IF NOT EXISTS wishlist_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  created_at DATETIME,
  UNIQUE (user_id, product_id)
);`
	require.NoError(t, db.Exec(productsDDL).Error)
	require.NoError(t, db.Exec(wishlistDDL).Error)
	require.NoError(t, db.Exec("DELETE FROM products").Error)
	require.NoError(t, db.Exec("DELETE FROM wishlist_items").Error)
	return db
}

func newWishlistService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		WishlistRepo: NewRepository(db),
		ProductRepo:  products.NewRepository(db),
	})
	require.NoError(t, err)
	return svc
}

func newWishlistProduct(t *testing.T, db *gorm.DB) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:          uuid.New(),
		Slug:        fmt.Sprintf("wishlist-product-%s", uuid.NewString()),
		Name:        "Wishlist Product",
		Brand:       "AquaOne",
		Category:    "fish",
		Subcategory: "betta",
		Description: "desc",
		Price:       25000,
		Currency:    "IQD",
		Images:      []string{},
		Thumbnail:   "thumb.jpg",
		Stock:       5,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	db := setupWishlistTestDB(t)
	svc := newWishlistService(t, db)
	userID := uuid.New()
	product := newWishlistProduct(t, db)

	added, err := svc.AddItem(context.Background(), userID, product.ID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.AddItem(context.Background(), userID, product.ID)
	require.NoError(t, err)
	assert.False(t, added, "duplicate add must be a no-op")

	wishlist, err := svc.GetWishlist(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, wishlist.Items, 1)
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	db := setupWishlistTestDB(t)
	svc := newWishlistService(t, db)

	_, err := svc.AddItem(context.Background(), uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestWishlistRemoveReportsExistence(t *testing.T) {
	db := setupWishlistTestDB(t)
	svc := newWishlistService(t, db)
	userID := uuid.New()
	product := newWishlistProduct(t, db)

	_, err := svc.AddItem(context.Background(), userID, product.ID)
	require.NoError(t, err)

	removed, err := svc.RemoveItem(context.Background(), userID, product.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.RemoveItem(context.Background(), userID, product.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestWishlistIsolatedPerUser(t *testing.T) {
	db := setupWishlistTestDB(t)
	svc := newWishlistService(t, db)
	product := newWishlistProduct(t, db)

	alice := uuid.New()
	bob := uuid.New()
	_, err := svc.AddItem(context.Background(), alice, product.ID)
	require.NoError(t, err)

	wishlist, err := svc.GetWishlist(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Items)
}
