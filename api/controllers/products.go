package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fishweb-iq/fishweb-backend/api/responses"
	"github.com/fishweb-iq/fishweb-backend/api/validators"
	productsvc "github.com/fishweb-iq/fishweb-backend/internal/products"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
	"github.com/fishweb-iq/fishweb-backend/pkg/pagination"
)

// ProductsList serves the public catalog with filters and cursor pagination.
func ProductsList(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := r.URL.Query()
		input := productsvc.ListProductsInput{
			Category:    strings.TrimSpace(query.Get("category")),
			Subcategory: strings.TrimSpace(query.Get("subcategory")),
			Search:      strings.TrimSpace(query.Get("search")),
			Sort:        strings.TrimSpace(query.Get("sort")),
			BestSellers: query.Get("best_sellers") == "true",
			NewArrivals: query.Get("new") == "true",
			Cursor:      strings.TrimSpace(query.Get("cursor")),
			Limit:       limit,
		}

		page, err := svc.ListProducts(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// ProductDetail resolves a product by UUID or, failing that, by slug.
func ProductDetail(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		raw := strings.TrimSpace(chi.URLParam(r, "productId"))
		if raw == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		if id, err := uuid.Parse(raw); err == nil {
			product, err := svc.GetProduct(r.Context(), id)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, product)
			return
		}

		product, err := svc.GetProductBySlug(r.Context(), raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

type createProductRequest struct {
	Slug           string         `json:"slug,omitempty"`
	Name           string         `json:"name" validate:"required"`
	Brand          string         `json:"brand" validate:"required"`
	Category       string         `json:"category" validate:"required"`
	Subcategory    string         `json:"subcategory,omitempty"`
	Description    string         `json:"description,omitempty"`
	Price          int64          `json:"price" validate:"required,min=0"`
	OriginalPrice  *int64         `json:"original_price,omitempty" validate:"omitempty,min=0"`
	Images         []string       `json:"images,omitempty"`
	Thumbnail      string         `json:"thumbnail,omitempty"`
	Stock          int            `json:"stock" validate:"min=0"`
	IsNew          bool           `json:"is_new,omitempty"`
	IsBestSeller   bool           `json:"is_best_seller,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
}

// AdminCreateProduct handles catalog additions from the admin dashboard.
func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), productsvc.CreateProductInput{
			Slug:           payload.Slug,
			Name:           payload.Name,
			Brand:          payload.Brand,
			Category:       payload.Category,
			Subcategory:    payload.Subcategory,
			Description:    payload.Description,
			Price:          payload.Price,
			OriginalPrice:  payload.OriginalPrice,
			Images:         payload.Images,
			Thumbnail:      payload.Thumbnail,
			Stock:          payload.Stock,
			IsNew:          payload.IsNew,
			IsBestSeller:   payload.IsBestSeller,
			Specifications: payload.Specifications,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

type updateProductRequest struct {
	Name           *string         `json:"name,omitempty"`
	Brand          *string         `json:"brand,omitempty"`
	Category       *string         `json:"category,omitempty"`
	Subcategory    *string         `json:"subcategory,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Price          *int64          `json:"price,omitempty" validate:"omitempty,min=0"`
	OriginalPrice  *int64          `json:"original_price,omitempty" validate:"omitempty,min=0"`
	Images         *[]string       `json:"images,omitempty"`
	Thumbnail      *string         `json:"thumbnail,omitempty"`
	Stock          *int            `json:"stock,omitempty" validate:"omitempty,min=0"`
	IsNew          *bool           `json:"is_new,omitempty"`
	IsBestSeller   *bool           `json:"is_best_seller,omitempty"`
	Specifications *map[string]any `json:"specifications,omitempty"`
}

// AdminUpdateProduct patches the provided fields on a product.
func AdminUpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), id, productsvc.UpdateProductInput{
			Name:           payload.Name,
			Brand:          payload.Brand,
			Category:       payload.Category,
			Subcategory:    payload.Subcategory,
			Description:    payload.Description,
			Price:          payload.Price,
			OriginalPrice:  payload.OriginalPrice,
			Images:         payload.Images,
			Thumbnail:      payload.Thumbnail,
			Stock:          payload.Stock,
			IsNew:          payload.IsNew,
			IsBestSeller:   payload.IsBestSeller,
			Specifications: payload.Specifications,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product from the catalog.
func AdminDeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

func parseProductID(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "productId"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	return id, nil
}
