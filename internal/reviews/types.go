package reviews

import (
	"time"

	"github.com/google/uuid"

	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
)

// CreateReviewInput is the payload for posting a review.
type CreateReviewInput struct {
	Rating  int      `json:"rating" validate:"required,min=1,max=5"`
	Comment *string  `json:"comment,omitempty" validate:"omitempty,max=2000"`
	Images  []string `json:"images,omitempty" validate:"omitempty,max=5,dive,url"`
}

// ReviewDTO is the transport shape of a stored review.
type ReviewDTO struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummaryDTO is the aggregate a product page renders next to the stars.
type RatingSummaryDTO struct {
	Average float64     `json:"average"`
	Count   int         `json:"count"`
	ByStars map[int]int `json:"by_stars"`
}

// FromModel maps a persisted review onto its transport shape.
func FromModel(r *models.Review) *ReviewDTO {
	if r == nil {
		return nil
	}
	return &ReviewDTO{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Images:    append([]string(nil), r.Images...),
		CreatedAt: r.CreatedAt,
	}
}
