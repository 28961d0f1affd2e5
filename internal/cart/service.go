package cart

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

// MaxQuantityPerItem caps how many units of one product a cart can hold.
const MaxQuantityPerItem = 99

type productReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

// Service exposes business rules for cart management.
type Service interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartDTO, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	CartRepo    *Repository
	ProductRepo productReader
}

type service struct {
	cartRepo    *Repository
	productRepo productReader
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CartRepo == nil {
		return nil, fmt.Errorf("cart repo is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repo is required")
	}
	return &service{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
	}, nil
}

// GetCart returns the user's cart joined with current product data.
func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	return s.buildCart(ctx, userID)
}

// AddItem validates the product and adds the quantity to the user's cart.
// Adding a product already in the cart increases its quantity; the
// accumulated total never exceeds MaxQuantityPerItem.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity <= 0 {
		quantity = 1
	}
	if quantity > MaxQuantityPerItem {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity exceeds per-item limit")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if err := s.cartRepo.UpsertItem(ctx, userID, productID, quantity); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add cart item")
	}
	return s.buildCart(ctx, userID)
}

// UpdateQuantity overwrites the quantity for a cart row. A quantity of zero
// or less removes the row.
func (s *service) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity > MaxQuantityPerItem {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity exceeds per-item limit")
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	updated, err := s.cartRepo.SetQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart item")
	}
	if updated == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return s.buildCart(ctx, userID)
}

// RemoveItem drops the cart row regardless of prior state.
func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := s.cartRepo.RemoveItem(ctx, userID, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart item")
	}
	return s.buildCart(ctx, userID)
}

// Clear empties the user's cart.
func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) buildCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	rows, err := s.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart items")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}
	productRows, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart products")
	}
	byID := make(map[uuid.UUID]*models.Product, len(productRows))
	for i := range productRows {
		byID[productRows[i].ID] = &productRows[i]
	}

	cart := &CartDTO{Items: make([]CartItemDTO, 0, len(rows))}
	for _, row := range rows {
		product, ok := byID[row.ProductID]
		if !ok {
			// Product deleted since it was added; skip the orphan row.
			continue
		}
		lineTotal := product.Price * int64(row.Quantity)
		cart.Items = append(cart.Items, CartItemDTO{
			Product:   products.FromModel(product),
			Quantity:  row.Quantity,
			LineTotal: lineTotal,
			AddedAt:   row.CreatedAt,
		})
		cart.ItemCount += row.Quantity
		cart.Subtotal += lineTotal
	}
	return cart, nil
}
