package reviews

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	products "github.com/fishweb-iq/fishweb-backend/internal/products"
	"github.com/fishweb-iq/fishweb-backend/pkg/db"
	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
)

// Service exposes review operations.
type Service interface {
	CreateReview(ctx context.Context, userID, productID uuid.UUID, input CreateReviewInput) (*ReviewDTO, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]ReviewDTO, error)
	DeleteReview(ctx context.Context, userID, productID uuid.UUID) error
	RatingSummary(ctx context.Context, productID uuid.UUID) (*RatingSummaryDTO, error)
}

// ServiceParams groups dependencies for the reviews service.
type ServiceParams struct {
	DB          *db.Client
	ReviewRepo  *Repository
	ProductRepo *products.Repository
}

type service struct {
	db          *db.Client
	reviewRepo  *Repository
	productRepo *products.Repository
}

// NewService builds a reviews service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("db client is required")
	}
	if params.ReviewRepo == nil {
		return nil, fmt.Errorf("review repo is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repo is required")
	}
	return &service{
		db:          params.DB,
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
	}, nil
}

// CreateReview stores a review and refreshes the product's rating aggregate
// in the same transaction. A user gets one review per product.
func (s *service) CreateReview(ctx context.Context, userID, productID uuid.UUID, input CreateReviewInput) (*ReviewDTO, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	if input.Comment != nil {
		trimmed := strings.TrimSpace(*input.Comment)
		if trimmed == "" {
			input.Comment = nil
		} else {
			input.Comment = &trimmed
		}
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	review := &models.Review{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Images:    input.Images,
	}

	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.reviewRepo.WithTx(tx)
		if _, err := repo.FindByProductAndUser(ctx, productID, userID); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "you have already reviewed this product")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check existing review")
		}
		if err := repo.Create(ctx, review); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create review")
		}
		return s.refreshAggregate(ctx, tx, productID)
	})
	if err != nil {
		return nil, err
	}
	return FromModel(review), nil
}

func (s *service) ListReviews(ctx context.Context, productID uuid.UUID) ([]ReviewDTO, error) {
	rows, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}
	out := make([]ReviewDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// DeleteReview removes the caller's review and refreshes the aggregate.
func (s *service) DeleteReview(ctx context.Context, userID, productID uuid.UUID) error {
	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		removed, err := s.reviewRepo.WithTx(tx).Delete(ctx, productID, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete review")
		}
		if !removed {
			return pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
		}
		return s.refreshAggregate(ctx, tx, productID)
	})
}

func (s *service) RatingSummary(ctx context.Context, productID uuid.UUID) (*RatingSummaryDTO, error) {
	rows, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load reviews")
	}
	summary := &RatingSummaryDTO{ByStars: map[int]int{}}
	var sum int
	for i := range rows {
		summary.Count++
		summary.ByStars[rows[i].Rating]++
		sum += rows[i].Rating
	}
	if summary.Count > 0 {
		summary.Average = roundRating(float64(sum) / float64(summary.Count))
	}
	return summary, nil
}

func (s *service) refreshAggregate(ctx context.Context, tx *gorm.DB, productID uuid.UUID) error {
	average, count, err := s.reviewRepo.WithTx(tx).Aggregate(ctx, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate reviews")
	}
	if err := s.productRepo.WithTx(tx).UpdateRatingAggregate(ctx, productID, roundRating(average), count); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product rating")
	}
	return nil
}

// roundRating keeps the denormalized average at one decimal place.
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}
