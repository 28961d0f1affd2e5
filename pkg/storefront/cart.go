package storefront

import (
	"context"
	"errors"
	"sync"

	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
)

// Notification messages shown by the cart store. Only the add path notifies;
// other failed mutations are logged and left for the next full fetch.
const (
	MsgSessionExpired = "your session has expired, please sign in again"
	MsgCartAddFailed  = "could not add the item to your cart"
)

// cartBackend is the persistence strategy behind the cart surface. The store
// picks the local or remote implementation per operation from the current
// session state. Each call takes the current collection snapshot and returns
// the next one.
type cartBackend interface {
	Add(ctx context.Context, current []CartItem, product Product) ([]CartItem, error)
	Remove(ctx context.Context, current []CartItem, id string) ([]CartItem, error)
	UpdateQuantity(ctx context.Context, current []CartItem, id string, quantity int) ([]CartItem, error)
	Clear(ctx context.Context, current []CartItem) ([]CartItem, error)
}

// CartStore exposes one operation surface over the visitor's cart regardless
// of whether it lives in local state files or the remote account resource.
//
// The mutex guards only the in-memory collection. Backend calls run outside
// it, so two concurrent mutations may interleave and the later replace wins;
// there is no cross-request serialization, retry, or offline queue.
type CartStore struct {
	mu          sync.Mutex
	items       []CartItem
	initialized bool

	store    *FileStore
	client   *RemoteClient
	local    cartBackend
	remote   cartBackend
	session  Session
	notifier Notifier
	logg     *logger.Logger
}

// CartStoreParams groups dependencies for NewCartStore.
type CartStoreParams struct {
	Store    *FileStore
	Remote   *RemoteClient
	Session  Session
	Notifier Notifier
	Logger   *logger.Logger
}

func NewCartStore(params CartStoreParams) (*CartStore, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store requires a file store")
	}
	if params.Remote == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store requires a remote client")
	}
	if params.Session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store requires a session")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store requires a logger")
	}
	notifier := params.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &CartStore{
		store:    params.Store,
		client:   params.Remote,
		local:    &localCartBackend{store: params.Store},
		remote:   &remoteCartBackend{client: params.Remote},
		session:  params.Session,
		notifier: notifier,
		logg:     params.Logger,
	}, nil
}

func (s *CartStore) authenticated() bool {
	return s.session.CurrentUser() != nil
}

func (s *CartStore) backend() cartBackend {
	if s.authenticated() {
		return s.remote
	}
	return s.local
}

// currentItems returns a snapshot of the collection, reading local state
// first if this anonymous store has never consulted it.
func (s *CartStore) currentItems(ctx context.Context) []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized && !s.authenticated() {
		s.store.Load(ctx, CartStorageKey, &s.items)
		s.initialized = true
	}
	snapshot := make([]CartItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *CartStore) replace(items []CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.initialized = true
}

// AddItem adds one unit of the product. Authenticated adds post to the
// account cart and then replace the collection with a full re-fetch; failures
// leave state unchanged and surface a notification, distinguishing an expired
// session from everything else. Anonymous adds increment an existing line or
// insert a quantity-1 line, then persist.
func (s *CartStore) AddItem(ctx context.Context, product Product) error {
	next, err := s.backend().Add(ctx, s.currentItems(ctx), product)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			s.notifier.Notify(MsgSessionExpired)
		} else {
			s.notifier.Notify(MsgCartAddFailed)
		}
		s.logg.Error(ctx, "failed to add item to cart", err)
		return err
	}
	s.replace(next)
	return nil
}

// RemoveItem drops the line with the given product id.
func (s *CartStore) RemoveItem(ctx context.Context, id string) error {
	next, err := s.backend().Remove(ctx, s.currentItems(ctx), id)
	if err != nil {
		s.logg.Error(ctx, "failed to remove item from cart", err)
		return err
	}
	s.replace(next)
	return nil
}

// UpdateQuantity sets the line quantity. Zero or negative delegates to
// RemoveItem so no zero-quantity row is ever stored.
func (s *CartStore) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, id)
	}
	next, err := s.backend().UpdateQuantity(ctx, s.currentItems(ctx), id, quantity)
	if err != nil {
		s.logg.Error(ctx, "failed to update cart quantity", err)
		return err
	}
	s.replace(next)
	return nil
}

// Clear empties the collection.
func (s *CartStore) Clear(ctx context.Context) error {
	next, err := s.backend().Clear(ctx, s.currentItems(ctx))
	if err != nil {
		s.logg.Error(ctx, "failed to clear cart", err)
		return err
	}
	s.replace(next)
	return nil
}

// SyncWithAccount replaces the collection wholesale with the account cart.
// Call it on login; pre-login local items are discarded, the server wins.
// Anonymous calls are a no-op.
func (s *CartStore) SyncWithAccount(ctx context.Context) error {
	if !s.authenticated() {
		return nil
	}
	items, err := s.client.FetchCart(ctx)
	if err != nil {
		s.logg.Error(ctx, "failed to fetch account cart", err)
		return err
	}
	s.replace(items)
	return nil
}

// Items returns a copy of the current collection.
func (s *CartStore) Items(ctx context.Context) []CartItem {
	return s.currentItems(ctx)
}

// TotalItems is the sum of line quantities.
func (s *CartStore) TotalItems(ctx context.Context) int {
	total := 0
	for _, item := range s.currentItems(ctx) {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of quantity times unit price.
func (s *CartStore) TotalPrice(ctx context.Context) int64 {
	var total int64
	for _, item := range s.currentItems(ctx) {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

type localCartBackend struct {
	store *FileStore
}

func (b *localCartBackend) Add(ctx context.Context, current []CartItem, product Product) ([]CartItem, error) {
	next := make([]CartItem, 0, len(current)+1)
	found := false
	for _, item := range current {
		if item.ID == product.ID {
			item.Quantity++
			found = true
		}
		next = append(next, item)
	}
	if !found {
		next = append(next, cartItemFrom(product))
	}
	if err := b.store.Save(ctx, CartStorageKey, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (b *localCartBackend) Remove(ctx context.Context, current []CartItem, id string) ([]CartItem, error) {
	next := make([]CartItem, 0, len(current))
	for _, item := range current {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if err := b.store.Save(ctx, CartStorageKey, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (b *localCartBackend) UpdateQuantity(ctx context.Context, current []CartItem, id string, quantity int) ([]CartItem, error) {
	next := make([]CartItem, len(current))
	copy(next, current)
	for i := range next {
		if next[i].ID == id {
			next[i].Quantity = quantity
		}
	}
	if err := b.store.Save(ctx, CartStorageKey, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (b *localCartBackend) Clear(ctx context.Context, _ []CartItem) ([]CartItem, error) {
	next := []CartItem{}
	if err := b.store.Save(ctx, CartStorageKey, next); err != nil {
		return nil, err
	}
	return next, nil
}

type remoteCartBackend struct {
	client *RemoteClient
}

// Add posts the product and then re-fetches the whole account cart; every
// authenticated add is a full reload, not an incremental merge.
func (b *remoteCartBackend) Add(ctx context.Context, _ []CartItem, product Product) ([]CartItem, error) {
	if err := b.client.AddCartItem(ctx, product.ID, 1); err != nil {
		return nil, err
	}
	return b.client.FetchCart(ctx)
}

func (b *remoteCartBackend) Remove(ctx context.Context, current []CartItem, id string) ([]CartItem, error) {
	if err := b.client.RemoveCartItem(ctx, id); err != nil {
		return nil, err
	}
	next := make([]CartItem, 0, len(current))
	for _, item := range current {
		if item.ID != id {
			next = append(next, item)
		}
	}
	return next, nil
}

// UpdateQuantity patches the local line optimistically after the PUT; unlike
// Add it does not re-fetch.
func (b *remoteCartBackend) UpdateQuantity(ctx context.Context, current []CartItem, id string, quantity int) ([]CartItem, error) {
	if err := b.client.UpdateCartQuantity(ctx, id, quantity); err != nil {
		return nil, err
	}
	next := make([]CartItem, len(current))
	copy(next, current)
	for i := range next {
		if next[i].ID == id {
			next[i].Quantity = quantity
		}
	}
	return next, nil
}

func (b *remoteCartBackend) Clear(ctx context.Context, _ []CartItem) ([]CartItem, error) {
	if err := b.client.ClearCart(ctx); err != nil {
		return nil, err
	}
	return []CartItem{}, nil
}
