package products

import (
	"context"
	"strings"

	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	"github.com/fishweb-iq/fishweb-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a products repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction handle.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new catalog entry.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Save persists all fields of an existing product.
func (r *Repository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes the product row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

// FindByID loads a product by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindBySlug loads a product by its URL slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs loads the products matching the provided IDs, unordered.
func (r *Repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// List returns a filtered, cursor-paginated catalog slice.
func (r *Repository) List(ctx context.Context, input ListProductsInput) ([]models.Product, string, int64, error) {
	normalizedLimit := pagination.NormalizeLimit(input.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(input.Limit)

	cursorValue := strings.TrimSpace(input.Cursor)
	decodedCursor, err := pagination.ParseCursor(cursorValue)
	if err != nil {
		return nil, "", 0, err
	}

	base := r.db.WithContext(ctx).Model(&models.Product{})
	base = applyFilters(base, input)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, "", 0, err
	}

	// Cursor keys are (created_at, id), so only the newest-first orders can resume
	// from one. Other sorts restart from the top.
	query := base.Session(&gorm.Session{})
	if decodedCursor != nil && (input.Sort == "" || input.Sort == SortNewest) {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID)
	}
	query = applySort(query, input.Sort).Limit(limitWithBuffer)

	var rows []models.Product
	if err := query.Find(&rows).Error; err != nil {
		return nil, "", 0, err
	}

	nextCursor := ""
	if len(rows) > normalizedLimit {
		rows = rows[:normalizedLimit]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}

	return rows, nextCursor, total, nil
}

// DecrementStock atomically reduces stock, failing when the product would oversell.
// Returns true when the decrement applied.
func (r *Repository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateRatingAggregate overwrites the denormalized review stats on the product row.
func (r *Repository) UpdateRatingAggregate(ctx context.Context, id uuid.UUID, rating float64, reviewCount int) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"rating":       rating,
			"review_count": reviewCount,
		}).Error
}

func applyFilters(query *gorm.DB, input ListProductsInput) *gorm.DB {
	if category := strings.TrimSpace(input.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if subcategory := strings.TrimSpace(input.Subcategory); subcategory != "" {
		query = query.Where("subcategory = ?", subcategory)
	}
	if search := strings.TrimSpace(input.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern)
	}
	if input.BestSellers {
		query = query.Where("is_best_seller = ?", true)
	}
	if input.NewArrivals {
		query = query.Where("is_new = ?", true)
	}
	return query
}

func applySort(query *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case SortPriceAsc:
		return query.Order("price ASC").Order("created_at DESC").Order("id DESC")
	case SortPriceDesc:
		return query.Order("price DESC").Order("created_at DESC").Order("id DESC")
	case SortRating:
		return query.Order("rating DESC").Order("created_at DESC").Order("id DESC")
	case SortFeatured:
		return query.Order("is_best_seller DESC").Order("created_at DESC").Order("id DESC")
	default:
		return query.Order("created_at DESC").Order("id DESC")
	}
}
