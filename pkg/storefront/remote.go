package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
)

// ErrSessionExpired is returned when the backend rejects the bearer token.
// It is the only remote failure the stores distinguish; everything else is a
// generic sync failure.
var ErrSessionExpired = pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired")

// RemoteClient issues the account-scoped cart and favorites calls against the
// backend and maps server payloads into line items.
type RemoteClient struct {
	baseURL string
	session Session
	http    *http.Client
}

func NewRemoteClient(baseURL string, timeout time.Duration, session Session) (*RemoteClient, error) {
	if baseURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "remote client requires a base url")
	}
	if session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "remote client requires a session")
	}
	return &RemoteClient{
		baseURL: baseURL,
		session: session,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type remoteProduct struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price"`
	Images        []string `json:"images"`
	Thumbnail     string   `json:"thumbnail"`
	Rating        float64  `json:"rating"`
}

func (p remoteProduct) image() string {
	if p.Thumbnail != "" {
		return p.Thumbnail
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

type remoteCartPayload struct {
	Data struct {
		Items []struct {
			Product  remoteProduct `json:"product"`
			Quantity int           `json:"quantity"`
		} `json:"items"`
	} `json:"data"`
}

type remoteWishlistPayload struct {
	Data struct {
		Items []struct {
			Product remoteProduct `json:"product"`
		} `json:"items"`
	} `json:"data"`
}

func (c *RemoteClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "calling storefront backend")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading backend response")
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrSessionExpired
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("backend returned status %d for %s %s", resp.StatusCode, method, path))
	}
	return raw, nil
}

// FetchCart lists the account cart and maps it to cart line items.
func (c *RemoteClient) FetchCart(ctx context.Context) ([]CartItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/v1/cart", nil)
	if err != nil {
		return nil, err
	}

	var payload remoteCartPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "parsing cart response")
	}

	items := make([]CartItem, 0, len(payload.Data.Items))
	for _, row := range payload.Data.Items {
		items = append(items, CartItem{
			ID:       row.Product.ID,
			Name:     row.Product.Name,
			Price:    row.Product.Price,
			Quantity: row.Quantity,
			Image:    row.Product.image(),
			Slug:     row.Product.Slug,
		})
	}
	return items, nil
}

func (c *RemoteClient) AddCartItem(ctx context.Context, productID string, quantity int) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/cart", map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	})
	return err
}

func (c *RemoteClient) UpdateCartQuantity(ctx context.Context, productID string, quantity int) error {
	_, err := c.do(ctx, http.MethodPut, "/api/v1/cart/"+productID, map[string]any{
		"quantity": quantity,
	})
	return err
}

func (c *RemoteClient) RemoveCartItem(ctx context.Context, productID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/cart/"+productID, nil)
	return err
}

func (c *RemoteClient) ClearCart(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/cart", nil)
	return err
}

// FetchWishlist lists the account favorites and maps them to wishlist items.
func (c *RemoteClient) FetchWishlist(ctx context.Context) ([]WishlistItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/v1/favorites", nil)
	if err != nil {
		return nil, err
	}

	var payload remoteWishlistPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "parsing favorites response")
	}

	items := make([]WishlistItem, 0, len(payload.Data.Items))
	for _, row := range payload.Data.Items {
		items = append(items, WishlistItem{
			ID:            row.Product.ID,
			Name:          row.Product.Name,
			Price:         row.Product.Price,
			OriginalPrice: row.Product.OriginalPrice,
			Image:         row.Product.image(),
			Slug:          row.Product.Slug,
			Brand:         row.Product.Brand,
			Rating:        row.Product.Rating,
			Category:      row.Product.Category,
		})
	}
	return items, nil
}

func (c *RemoteClient) AddWishlistItem(ctx context.Context, productID string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/favorites/"+productID, nil)
	return err
}

func (c *RemoteClient) RemoveWishlistItem(ctx context.Context, productID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/favorites/"+productID, nil)
	return err
}
