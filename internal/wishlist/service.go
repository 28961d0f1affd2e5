package wishlist

import (
	"context"
	"errors"
	"fmt"

	products "github.com/fishweb-iq/fishweb-backend/internal/products"
	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

// Service exposes business rules for wishlist management.
type Service interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) (*WishlistDTO, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	WishlistRepo *Repository
	ProductRepo  productReader
}

type service struct {
	wishlistRepo *Repository
	productRepo  productReader
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.WishlistRepo == nil {
		return nil, fmt.Errorf("wishlist repo is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repo is required")
	}
	return &service{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
	}, nil
}

// GetWishlist returns the user's favorites joined with current product data.
func (s *service) GetWishlist(ctx context.Context, userID uuid.UUID) (*WishlistDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	rows, err := s.wishlistRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist items")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}
	productRows, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist products")
	}
	byID := make(map[uuid.UUID]*models.Product, len(productRows))
	for i := range productRows {
		byID[productRows[i].ID] = &productRows[i]
	}

	wishlist := &WishlistDTO{
		Items:      make([]WishlistItemDTO, 0, len(rows)),
		ProductIDs: make([]uuid.UUID, 0, len(rows)),
	}
	for _, row := range rows {
		product, ok := byID[row.ProductID]
		if !ok {
			continue
		}
		wishlist.Items = append(wishlist.Items, WishlistItemDTO{
			Product: products.FromModel(product),
			AddedAt: row.CreatedAt,
		})
		wishlist.ProductIDs = append(wishlist.ProductIDs, row.ProductID)
	}
	return wishlist, nil
}

// AddItem ensures the product exists and favorites it. Re-adding an already
// favorited product is a no-op; the bool reports whether a row was written.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if productID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	added, err := s.wishlistRepo.AddItem(ctx, userID, productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add wishlist item")
	}
	return added, nil
}

// RemoveItem drops the wishlist entry; the bool reports whether it existed.
func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	removed, err := s.wishlistRepo.RemoveItem(ctx, userID, productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove wishlist item")
	}
	return removed, nil
}
