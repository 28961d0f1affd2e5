package cart

import (
	"context"
	"time"

	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository encapsulates cart persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction handle.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// UpsertItem inserts a cart row or adds the quantity to the existing one.
// The accumulated quantity is capped at MaxQuantityPerItem in SQL so that
// repeated adds cannot creep past the limit. CASE WHEN instead of LEAST
// because the tests run on SQLite.
func (r *Repository) UpsertItem(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if userID == uuid.Nil || productID == uuid.Nil {
		return gorm.ErrInvalidValue
	}

	item := models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr(
					"CASE WHEN cart_items.quantity + ? > ? THEN ? ELSE cart_items.quantity + ? END",
					quantity, MaxQuantityPerItem, MaxQuantityPerItem, quantity,
				),
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(&item).Error
}

// SetQuantity overwrites the quantity for an existing cart row.
// Returns the number of rows updated.
func (r *Repository) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		UpdateColumns(map[string]any{
			"quantity":   quantity,
			"updated_at": time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}

// RemoveItem deletes the user-product row if it exists.
func (r *Repository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).
		Error
}

// Clear drops every cart row for the user.
func (r *Repository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).
		Error
}

// ListItems returns the user's cart rows ordered by insertion time.
func (r *Repository) ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var rows []models.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
