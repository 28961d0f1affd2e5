package products

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
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
	require.NoError(t, db.Exec(ddl).Error)
	require.NoError(t, db.Exec("DELETE FROM products").Error)
	return db
}

func mustCreateTestProduct(t *testing.T, db *gorm.DB, mutate func(*models.Product)) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:          uuid.New(),
		Slug:        fmt.Sprintf("test-product-%s", uuid.NewString()),
		Name:        "Test Product",
		Brand:       "AquaOne",
		Category:    "equipment",
		Subcategory: "filters",
		Description: "A reliable canister filter.",
		Price:       25000,
		Currency:    "IQD",
		Images:      []string{},
		Thumbnail:   "https://cdn.example.com/thumb.jpg",
		Stock:       10,
	}
	if mutate != nil {
		mutate(product)
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestRepositoryListFiltersByCategory(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	mustCreateTestProduct(t, db, func(p *models.Product) { p.Category = "fish" })
	mustCreateTestProduct(t, db, func(p *models.Product) { p.Category = "equipment" })
	mustCreateTestProduct(t, db, func(p *models.Product) { p.Category = "equipment" })

	rows, _, total, err := repo.List(context.Background(), ListProductsInput{Category: "equipment"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.EqualValues(t, 2, total)
	for _, row := range rows {
		assert.Equal(t, "equipment", row.Category)
	}
}

func TestRepositoryListSearchMatchesNameAndBrand(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	mustCreateTestProduct(t, db, func(p *models.Product) { p.Name = "Betta Pellets" })
	mustCreateTestProduct(t, db, func(p *models.Product) { p.Brand = "BettaWorld" })
	mustCreateTestProduct(t, db, func(p *models.Product) { p.Name = "Gravel Vacuum" })

	rows, _, _, err := repo.List(context.Background(), ListProductsInput{Search: "betta"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRepositoryListSortsByPrice(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	mustCreateTestProduct(t, db, func(p *models.Product) { p.Price = 30000 })
	mustCreateTestProduct(t, db, func(p *models.Product) { p.Price = 5000 })
	mustCreateTestProduct(t, db, func(p *models.Product) { p.Price = 15000 })

	rows, _, _, err := repo.List(context.Background(), ListProductsInput{Sort: SortPriceAsc})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.EqualValues(t, 5000, rows[0].Price)
	assert.EqualValues(t, 30000, rows[2].Price)
}

func TestRepositoryListPaginates(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		createdAt := base.Add(time.Duration(i) * time.Minute)
		mustCreateTestProduct(t, db, func(p *models.Product) { p.CreatedAt = createdAt })
	}

	first, cursor, total, err := repo.List(context.Background(), ListProductsInput{Limit: 3})
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.EqualValues(t, 5, total)
	require.NotEmpty(t, cursor)

	second, nextCursor, _, err := repo.List(context.Background(), ListProductsInput{Limit: 3, Cursor: cursor})
	require.NoError(t, err)
	assert.Len(t, second, 2)
	assert.Empty(t, nextCursor)

	seen := map[uuid.UUID]bool{}
	for _, row := range append(first, second...) {
		assert.False(t, seen[row.ID], "product %s returned twice", row.ID)
		seen[row.ID] = true
	}
}

func TestRepositoryDecrementStock(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	product := mustCreateTestProduct(t, db, func(p *models.Product) { p.Stock = 3 })

	ok, err := repo.DecrementStock(context.Background(), product.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.DecrementStock(context.Background(), product.ID, 2)
	require.NoError(t, err)
	assert.False(t, ok, "oversell must not apply")

	reloaded, err := repo.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Stock)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Fluval FX6 Canister Filter": "fluval-fx6-canister-filter",
		"  Betta   Food!  ":          "betta-food",
		"---":                        "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
