package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	cartpkg "github.com/fishweb-iq/fishweb-backend/internal/cart"
	"github.com/fishweb-iq/fishweb-backend/internal/coupons"
	products "github.com/fishweb-iq/fishweb-backend/internal/products"
	"github.com/fishweb-iq/fishweb-backend/pkg/config"
	"github.com/fishweb-iq/fishweb-backend/pkg/db"
	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const idempotencyScope = "checkout"

type idempotencyStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	IdempotencyKey(scope, id string) string
}

type couponValidator interface {
	Validate(ctx context.Context, code string, orderTotal int64) (*coupons.DiscountDTO, error)
}

// Service exposes checkout and order history operations.
type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*OrderDTO, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
}

// ServiceParams groups dependencies for the orders service.
type ServiceParams struct {
	DB          *db.Client
	OrderRepo   *Repository
	CartRepo    *cartpkg.Repository
	ProductRepo *products.Repository
	CouponRepo  *coupons.Repository
	Coupons     couponValidator
	Idempotency idempotencyStore
	Checkout    config.CheckoutConfig
}

type service struct {
	db          *db.Client
	orderRepo   *Repository
	cartRepo    *cartpkg.Repository
	productRepo *products.Repository
	couponRepo  *coupons.Repository
	coupons     couponValidator
	idempotency idempotencyStore
	cfg         config.CheckoutConfig
}

// NewService builds an orders service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("db client is required")
	}
	if params.OrderRepo == nil {
		return nil, fmt.Errorf("order repo is required")
	}
	if params.CartRepo == nil {
		return nil, fmt.Errorf("cart repo is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repo is required")
	}
	if params.CouponRepo == nil {
		return nil, fmt.Errorf("coupon repo is required")
	}
	if params.Coupons == nil {
		return nil, fmt.Errorf("coupon validator is required")
	}
	return &service{
		db:          params.DB,
		orderRepo:   params.OrderRepo,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		couponRepo:  params.CouponRepo,
		coupons:     params.Coupons,
		idempotency: params.Idempotency,
		cfg:         params.Checkout,
	}, nil
}

// Checkout converts the user's cart into an order inside one transaction:
// stock is decremented, the coupon is consumed, and the cart is cleared.
func (s *service) Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	if err := s.claimIdempotencyKey(ctx, userID, input.IdempotencyKey); err != nil {
		return nil, err
	}

	var placed *models.Order
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		couponRepo := s.couponRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		rows, err := cartRepo.ListItems(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart items")
		}
		if len(rows) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		lines := make([]models.OrderLine, 0, len(rows))
		var subtotal int64
		for _, row := range rows {
			product, err := productRepo.FindByID(ctx, row.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product no longer available")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
			}

			ok, err := productRepo.DecrementStock(ctx, product.ID, row.Quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
			}
			if !ok {
				return pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("insufficient stock for %s", product.Name))
			}

			lineTotal := product.Price * int64(row.Quantity)
			lines = append(lines, models.OrderLine{
				ProductID: product.ID,
				Name:      product.Name,
				Slug:      product.Slug,
				UnitPrice: product.Price,
				Quantity:  row.Quantity,
				LineTotal: lineTotal,
				Thumbnail: product.Thumbnail,
			})
			subtotal += lineTotal
		}

		var discount int64
		var couponCode *string
		if input.CouponCode != nil && strings.TrimSpace(*input.CouponCode) != "" {
			result, err := s.coupons.Validate(ctx, *input.CouponCode, subtotal)
			if err != nil {
				return err
			}
			coupon, err := couponRepo.FindByCode(ctx, result.Code)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load coupon")
			}
			applied, err := couponRepo.IncrementUsage(ctx, coupon.ID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consume coupon")
			}
			if !applied {
				return pkgerrors.New(pkgerrors.CodeValidation, "coupon usage limit reached")
			}
			discount = result.Discount
			couponCode = &result.Code
		}

		shipping := input.ShippingAddress
		order := &models.Order{
			ID:              uuid.New(),
			UserID:          userID,
			Status:          StatusPending,
			Subtotal:        subtotal,
			Discount:        discount,
			Total:           subtotal - discount,
			CouponCode:      couponCode,
			Items:           lines,
			ShippingAddress: &shipping,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		if err := cartRepo.Clear(ctx, userID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(placed), nil
}

// GetOrder loads one of the user's orders.
func (s *service) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error) {
	if userID == uuid.Nil || orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and order id are required")
	}
	order, err := s.orderRepo.FindByID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return FromModel(order), nil
}

// ListOrders returns the user's order history newest first.
func (s *service) ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	rows, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	result := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		result = append(result, *FromModel(&rows[i]))
	}
	return result, nil
}

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusShipped:   true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// UpdateStatus moves an order to a new lifecycle state. Admin only; the
// route layer enforces that.
func (s *service) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	if orderID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !validStatuses[status] {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}
	affected, err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return nil
}

// claimIdempotencyKey reserves the client-provided key in Redis so a retried
// checkout cannot place a second order. Absent a key or a store, checkout
// proceeds unguarded.
func (s *service) claimIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) error {
	key = strings.TrimSpace(key)
	if key == "" || s.idempotency == nil {
		return nil
	}

	ttl := s.cfg.IdempotencyTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	redisKey := s.idempotency.IdempotencyKey(idempotencyScope, fmt.Sprintf("%s:%s", userID, key))
	claimed, err := s.idempotency.SetNX(ctx, redisKey, time.Now().UTC().Format(time.RFC3339), ttl)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "claim idempotency key")
	}
	if !claimed {
		return pkgerrors.New(pkgerrors.CodeIdempotency, "checkout already processed")
	}
	return nil
}
