package storefront

import (
	"context"

	"github.com/fishweb-iq/fishweb-backend/pkg/config"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
)

// Provider owns the cart and wishlist store pair plus their shared
// broadcaster. It is constructed once at application start, attached to the
// context handed to rendering code, and torn down with Close.
type Provider struct {
	Cart        *CartStore
	Wishlist    *WishlistStore
	Broadcaster *Broadcaster
}

// ProviderParams groups dependencies for NewProvider.
type ProviderParams struct {
	Config   config.StorefrontConfig
	Session  Session
	Notifier Notifier
	Logger   *logger.Logger
}

func NewProvider(params ProviderParams) (*Provider, error) {
	if params.Session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "provider requires a session")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "provider requires a logger")
	}

	broadcaster := NewBroadcaster()

	store, err := NewFileStore(params.Config.StateDir, params.Logger, broadcaster)
	if err != nil {
		return nil, err
	}

	client, err := NewRemoteClient(params.Config.APIBaseURL, params.Config.RequestTimeout, params.Session)
	if err != nil {
		return nil, err
	}

	cart, err := NewCartStore(CartStoreParams{
		Store:    store,
		Remote:   client,
		Session:  params.Session,
		Notifier: params.Notifier,
		Logger:   params.Logger,
	})
	if err != nil {
		return nil, err
	}

	wishlist, err := NewWishlistStore(WishlistStoreParams{
		Store:   store,
		Remote:  client,
		Session: params.Session,
		Logger:  params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		Cart:        cart,
		Wishlist:    wishlist,
		Broadcaster: broadcaster,
	}, nil
}

// Close releases the broadcaster subscriptions.
func (p *Provider) Close() {
	p.Broadcaster.Close()
}

type providerCtxKey struct{}

// WithProvider attaches the store pair to the context the view layer runs
// under.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerCtxKey{}, p)
}

// CartFromContext returns the cart store attached to ctx. It errors when
// called outside a provider-scoped context.
func CartFromContext(ctx context.Context) (*CartStore, error) {
	p, ok := ctx.Value(providerCtxKey{}).(*Provider)
	if !ok || p == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store must be used within a storefront provider")
	}
	return p.Cart, nil
}

// WishlistFromContext returns the wishlist store attached to ctx. It errors
// when called outside a provider-scoped context.
func WishlistFromContext(ctx context.Context) (*WishlistStore, error) {
	p, ok := ctx.Value(providerCtxKey{}).(*Provider)
	if !ok || p == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "wishlist store must be used within a storefront provider")
	}
	return p.Wishlist, nil
}
