package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, t.TempDir(), "", &stubSession{}, nil)
	wishlist := provider.Wishlist

	product := neonTetra()
	if err := wishlist.AddItem(ctx, product); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := wishlist.AddItem(ctx, product); err != nil {
		t.Fatalf("second add: %v", err)
	}

	if got := wishlist.TotalItems(ctx); got != 1 {
		t.Fatalf("expected exactly 1 stored entry, got %d", got)
	}
	if !wishlist.Contains(ctx, product.ID) {
		t.Fatal("expected product to be wishlisted")
	}
}

func TestWishlistRemove(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, t.TempDir(), "", &stubSession{}, nil)
	wishlist := provider.Wishlist

	product := neonTetra()
	if err := wishlist.AddItem(ctx, product); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := wishlist.RemoveItem(ctx, product.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if wishlist.Contains(ctx, product.ID) {
		t.Fatal("expected product to be gone")
	}
	if got := wishlist.TotalItems(ctx); got != 0 {
		t.Fatalf("expected empty wishlist, got %d", got)
	}
}

func TestWishlistClearYieldsEmptyCollection(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, t.TempDir(), "", &stubSession{}, nil)
	wishlist := provider.Wishlist

	if err := wishlist.AddItem(ctx, neonTetra()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := wishlist.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if got := wishlist.TotalItems(ctx); got != 0 {
		t.Fatalf("expected total items 0 after clear, got %d", got)
	}
}

func TestWishlistClearIsLocalOnlyWhenAuthenticated(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
		}
		w.Write([]byte(`{"data":{"added":true}}`))
	}))
	defer server.Close()

	session := &stubSession{}
	session.login(User{ID: "user-1", Username: "ahmed"}, "token-1")
	provider := newTestProvider(t, t.TempDir(), server.URL, session, nil)
	wishlist := provider.Wishlist

	if err := wishlist.AddItem(ctx, neonTetra()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := wishlist.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	for _, call := range calls {
		if call != "POST /api/v1/favorites/prod-neon-tetra" {
			t.Fatalf("clear must not call the backend, saw %q", call)
		}
	}
	if got := wishlist.TotalItems(ctx); got != 0 {
		t.Fatalf("expected empty wishlist after clear, got %d", got)
	}
}

func TestWishlistFreshStartsEmpty(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, t.TempDir(), "", &stubSession{}, nil)

	if got := provider.Wishlist.TotalItems(ctx); got != 0 {
		t.Fatalf("expected fresh wishlist total 0, got %d", got)
	}
}

func TestWishlistSyncWithAccountServerWins(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/api/v1/favorites" {
			w.Write([]byte(`{"data":{"items":[{"product":{"id":"prod-discus","name":"Discus","price":90000,"slug":"discus","brand":"FishWeb","category":"fish","rating":4.9,"original_price":110000,"images":["/d.jpg"]}}]}}`))
			return
		}
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	session := &stubSession{}
	provider := newTestProvider(t, t.TempDir(), server.URL, session, nil)
	wishlist := provider.Wishlist

	if err := wishlist.AddItem(ctx, neonTetra()); err != nil {
		t.Fatalf("anonymous add: %v", err)
	}

	session.login(User{ID: "user-1", Username: "ahmed"}, "token-1")
	if err := wishlist.SyncWithAccount(ctx); err != nil {
		t.Fatalf("sync with account: %v", err)
	}

	items := wishlist.Items(ctx)
	if len(items) != 1 || items[0].ID != "prod-discus" {
		t.Fatalf("expected account favorites to replace local items, got %+v", items)
	}
	if items[0].OriginalPrice == nil || *items[0].OriginalPrice != 110000 {
		t.Fatalf("expected original price mapped, got %+v", items[0].OriginalPrice)
	}
	if items[0].Image != "/d.jpg" {
		t.Fatalf("expected first image used when thumbnail missing, got %q", items[0].Image)
	}
	if wishlist.Contains(ctx, "prod-neon-tetra") {
		t.Fatal("pre-login local item should be discarded")
	}
}
