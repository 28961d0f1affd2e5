package storefront

import (
	"context"
	"sync"

	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
)

// wishlistBackend mirrors cartBackend for the favorites collection. There is
// no quantity concept and no remote clear endpoint.
type wishlistBackend interface {
	Add(ctx context.Context, current []WishlistItem, product Product) ([]WishlistItem, error)
	Remove(ctx context.Context, current []WishlistItem, id string) ([]WishlistItem, error)
}

// WishlistStore exposes one operation surface over the visitor's favorites,
// routing each mutation to local state files or the remote account resource
// based on the current session. Same concurrency posture as CartStore: the
// mutex guards the collection only, backend calls are not serialized.
type WishlistStore struct {
	mu          sync.Mutex
	items       []WishlistItem
	initialized bool

	store    *FileStore
	client   *RemoteClient
	local    wishlistBackend
	remote   wishlistBackend
	session  Session
	logg     *logger.Logger
}

// WishlistStoreParams groups dependencies for NewWishlistStore.
type WishlistStoreParams struct {
	Store   *FileStore
	Remote  *RemoteClient
	Session Session
	Logger  *logger.Logger
}

func NewWishlistStore(params WishlistStoreParams) (*WishlistStore, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "wishlist store requires a file store")
	}
	if params.Remote == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "wishlist store requires a remote client")
	}
	if params.Session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "wishlist store requires a session")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "wishlist store requires a logger")
	}
	return &WishlistStore{
		store:   params.Store,
		client:  params.Remote,
		local:   &localWishlistBackend{store: params.Store},
		remote:  &remoteWishlistBackend{client: params.Remote},
		session: params.Session,
		logg:    params.Logger,
	}, nil
}

func (s *WishlistStore) authenticated() bool {
	return s.session.CurrentUser() != nil
}

func (s *WishlistStore) backend() wishlistBackend {
	if s.authenticated() {
		return s.remote
	}
	return s.local
}

func (s *WishlistStore) currentItems(ctx context.Context) []WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized && !s.authenticated() {
		s.store.Load(ctx, WishlistStorageKey, &s.items)
		s.initialized = true
	}
	snapshot := make([]WishlistItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *WishlistStore) replace(items []WishlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.initialized = true
}

// AddItem saves the product to the favorites. Adding an id that is already
// present is a no-op, so the collection never holds duplicates.
func (s *WishlistStore) AddItem(ctx context.Context, product Product) error {
	current := s.currentItems(ctx)
	for _, item := range current {
		if item.ID == product.ID {
			return nil
		}
	}

	next, err := s.backend().Add(ctx, current, product)
	if err != nil {
		s.logg.Error(ctx, "failed to add item to wishlist", err)
		return err
	}
	s.replace(next)
	return nil
}

// RemoveItem drops the favorite with the given product id.
func (s *WishlistStore) RemoveItem(ctx context.Context, id string) error {
	next, err := s.backend().Remove(ctx, s.currentItems(ctx), id)
	if err != nil {
		s.logg.Error(ctx, "failed to remove item from wishlist", err)
		return err
	}
	s.replace(next)
	return nil
}

// Contains reports whether the product id is currently wishlisted.
func (s *WishlistStore) Contains(ctx context.Context, id string) bool {
	for _, item := range s.currentItems(ctx) {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the collection. It operates on local state only; the account
// favorites are untouched even when authenticated.
func (s *WishlistStore) Clear(ctx context.Context) error {
	next := []WishlistItem{}
	if !s.authenticated() {
		if err := s.store.Save(ctx, WishlistStorageKey, next); err != nil {
			s.logg.Error(ctx, "failed to clear wishlist", err)
			return err
		}
	}
	s.replace(next)
	return nil
}

// SyncWithAccount replaces the collection wholesale with the account
// favorites. Pre-login local items are discarded, the server wins. Anonymous
// calls are a no-op.
func (s *WishlistStore) SyncWithAccount(ctx context.Context) error {
	if !s.authenticated() {
		return nil
	}
	items, err := s.client.FetchWishlist(ctx)
	if err != nil {
		s.logg.Error(ctx, "failed to fetch account wishlist", err)
		return err
	}
	s.replace(items)
	return nil
}

// Items returns a copy of the current collection.
func (s *WishlistStore) Items(ctx context.Context) []WishlistItem {
	return s.currentItems(ctx)
}

// TotalItems is the number of saved products.
func (s *WishlistStore) TotalItems(ctx context.Context) int {
	return len(s.currentItems(ctx))
}

type localWishlistBackend struct {
	store *FileStore
}

func (b *localWishlistBackend) Add(ctx context.Context, current []WishlistItem, product Product) ([]WishlistItem, error) {
	next := make([]WishlistItem, len(current), len(current)+1)
	copy(next, current)
	next = append(next, wishlistItemFrom(product))
	if err := b.store.Save(ctx, WishlistStorageKey, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (b *localWishlistBackend) Remove(ctx context.Context, current []WishlistItem, id string) ([]WishlistItem, error) {
	next := make([]WishlistItem, 0, len(current))
	for _, item := range current {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if err := b.store.Save(ctx, WishlistStorageKey, next); err != nil {
		return nil, err
	}
	return next, nil
}

type remoteWishlistBackend struct {
	client *RemoteClient
}

// Add posts the favorite and then appends the item optimistically; the
// backend ignores duplicate adds, so no re-fetch is needed.
func (b *remoteWishlistBackend) Add(ctx context.Context, current []WishlistItem, product Product) ([]WishlistItem, error) {
	if err := b.client.AddWishlistItem(ctx, product.ID); err != nil {
		return nil, err
	}
	next := make([]WishlistItem, len(current), len(current)+1)
	copy(next, current)
	return append(next, wishlistItemFrom(product)), nil
}

func (b *remoteWishlistBackend) Remove(ctx context.Context, current []WishlistItem, id string) ([]WishlistItem, error) {
	if err := b.client.RemoveWishlistItem(ctx, id); err != nil {
		return nil, err
	}
	next := make([]WishlistItem, 0, len(current))
	for _, item := range current {
		if item.ID != id {
			next = append(next, item)
		}
	}
	return next, nil
}
