package reviews

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	products "github.com/fishweb-iq/fishweb-backend/internal/products"
	"github.com/fishweb-iq/fishweb-backend/pkg/config"
	"github.com/fishweb-iq/fishweb-backend/pkg/db"
	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
)

func setupReviewsTestClient(t *testing.T) *db.Client {
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
CREATE TABLE IF NOT EXISTS reviews (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
  comment TEXT,
  images TEXT,
  created_at DATETIME,
  UNIQUE (product_id, user_id)
);`}
	for _, ddl := range ddls {
		require.NoError(t, client.DB().Exec(ddl).Error)
	}
	for _, table := range []string{"products", "reviews"} {
		require.NoError(t, client.DB().Exec("DELETE FROM "+table).Error)
	}
	return client
}

func newReviewsService(t *testing.T, client *db.Client) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		DB:          client,
		ReviewRepo:  NewRepository(client.DB()),
		ProductRepo: products.NewRepository(client.DB()),
	})
	require.NoError(t, err)
	return svc
}

func seedReviewProduct(t *testing.T, client *db.Client) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:          uuid.New(),
		Slug:        fmt.Sprintf("review-product-%s", uuid.NewString()),
		Name:        "Betta Splendens",
		Brand:       "FishWeb",
		Category:    "fish",
		Subcategory: "freshwater",
		Description: "desc",
		Price:       25000,
		Currency:    "IQD",
		Images:      []string{},
		Thumbnail:   "thumb.jpg",
		Stock:       5,
	}
	require.NoError(t, client.DB().Create(product).Error)
	return product
}

func TestCreateReviewUpdatesProductAggregate(t *testing.T) {
	client := setupReviewsTestClient(t)
	svc := newReviewsService(t, client)
	product := seedReviewProduct(t, client)

	comment := "Healthy and vibrant"
	review, err := svc.CreateReview(context.Background(), uuid.New(), product.ID, CreateReviewInput{
		Rating:  5,
		Comment: &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	_, err = svc.CreateReview(context.Background(), uuid.New(), product.ID, CreateReviewInput{Rating: 4})
	require.NoError(t, err)

	reloaded, err := products.NewRepository(client.DB()).FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.ReviewCount)
	assert.InDelta(t, 4.5, reloaded.Rating, 0.001)
}

func TestCreateReviewRejectsDuplicatePerUser(t *testing.T) {
	client := setupReviewsTestClient(t)
	svc := newReviewsService(t, client)
	product := seedReviewProduct(t, client)
	userID := uuid.New()

	_, err := svc.CreateReview(context.Background(), userID, product.ID, CreateReviewInput{Rating: 4})
	require.NoError(t, err)

	_, err = svc.CreateReview(context.Background(), userID, product.ID, CreateReviewInput{Rating: 5})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestCreateReviewValidatesRatingBounds(t *testing.T) {
	client := setupReviewsTestClient(t)
	svc := newReviewsService(t, client)
	product := seedReviewProduct(t, client)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(context.Background(), uuid.New(), product.ID, CreateReviewInput{Rating: rating})
		typed := pkgerrors.As(err)
		require.NotNil(t, typed, "rating %d must be rejected", rating)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	}
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	client := setupReviewsTestClient(t)
	svc := newReviewsService(t, client)

	_, err := svc.CreateReview(context.Background(), uuid.New(), uuid.New(), CreateReviewInput{Rating: 3})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDeleteReviewRefreshesAggregate(t *testing.T) {
	client := setupReviewsTestClient(t)
	svc := newReviewsService(t, client)
	product := seedReviewProduct(t, client)
	userID := uuid.New()

	_, err := svc.CreateReview(context.Background(), userID, product.ID, CreateReviewInput{Rating: 2})
	require.NoError(t, err)
	_, err = svc.CreateReview(context.Background(), uuid.New(), product.ID, CreateReviewInput{Rating: 4})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(context.Background(), userID, product.ID))

	reloaded, err := products.NewRepository(client.DB()).FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.ReviewCount)
	assert.InDelta(t, 4.0, reloaded.Rating, 0.001)

	err = svc.DeleteReview(context.Background(), userID, product.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRatingSummaryBuckets(t *testing.T) {
	client := setupReviewsTestClient(t)
	svc := newReviewsService(t, client)
	product := seedReviewProduct(t, client)

	for _, rating := range []int{5, 5, 3} {
		_, err := svc.CreateReview(context.Background(), uuid.New(), product.ID, CreateReviewInput{Rating: rating})
		require.NoError(t, err)
	}

	summary, err := svc.RatingSummary(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 4.3, summary.Average, 0.001)
	assert.Equal(t, 2, summary.ByStars[5])
	assert.Equal(t, 1, summary.ByStars[3])
}
