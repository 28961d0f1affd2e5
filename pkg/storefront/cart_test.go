package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestAnonymousRepeatAddsAccumulateQuantity(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, t.TempDir(), "", &stubSession{}, nil)
	cart := provider.Cart

	product := neonTetra()
	if err := cart.AddItem(ctx, product); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := cart.AddItem(ctx, product); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items := cart.Items(ctx)
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if got := cart.TotalItems(ctx); got != 2 {
		t.Fatalf("expected total items 2, got %d", got)
	}
	if got := cart.TotalPrice(ctx); got != 50000 {
		t.Fatalf("expected total price 50000, got %d", got)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, t.TempDir(), "", &stubSession{}, nil)
	cart := provider.Cart

	if err := cart.AddItem(ctx, neonTetra()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.UpdateQuantity(ctx, "prod-neon-tetra", 0); err != nil {
		t.Fatalf("update quantity to zero: %v", err)
	}

	if got := len(cart.Items(ctx)); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
	if got := cart.TotalItems(ctx); got != 0 {
		t.Fatalf("expected total items 0, got %d", got)
	}
}

func TestUpdateQuantityZeroRemovesLineAuthenticated(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	var deleted []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/cart":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data":{"items":[]}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/cart":
			w.Write([]byte(`{"data":{"items":[{"product":{"id":"prod-neon-tetra","name":"Neon Tetra","price":25000,"slug":"neon-tetra"},"quantity":1}]}}`))
		case r.Method == http.MethodDelete:
			mu.Lock()
			deleted = append(deleted, r.URL.Path)
			mu.Unlock()
			w.Write([]byte(`{"data":{"cleared":true}}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	session := &stubSession{}
	session.login(User{ID: "user-1", Username: "ahmed"}, "token-1")
	provider := newTestProvider(t, t.TempDir(), server.URL, session, nil)
	cart := provider.Cart

	if err := cart.AddItem(ctx, neonTetra()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.UpdateQuantity(ctx, "prod-neon-tetra", 0); err != nil {
		t.Fatalf("update quantity to zero: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(deleted) != 1 || deleted[0] != "/api/v1/cart/prod-neon-tetra" {
		t.Fatalf("expected one DELETE of the line, got %v", deleted)
	}
	if got := cart.TotalItems(ctx); got != 0 {
		t.Fatalf("expected total items 0, got %d", got)
	}
}

func TestClearCartEmptiesCollection(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, t.TempDir(), "", &stubSession{}, nil)
	cart := provider.Cart

	if err := cart.AddItem(ctx, neonTetra()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if got := cart.TotalItems(ctx); got != 0 {
		t.Fatalf("expected total items 0 after clear, got %d", got)
	}
	if got := len(cart.Items(ctx)); got != 0 {
		t.Fatalf("expected no lines after clear, got %d", got)
	}
}

func TestFreshCartStartsEmpty(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, t.TempDir(), "", &stubSession{}, nil)

	if got := provider.Cart.TotalItems(ctx); got != 0 {
		t.Fatalf("expected fresh cart total 0, got %d", got)
	}
	if got := len(provider.Cart.Items(ctx)); got != 0 {
		t.Fatalf("expected fresh cart empty, got %d lines", got)
	}
}

func TestAnonymousEndToEndScenario(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, t.TempDir(), "", &stubSession{}, nil)
	cart := provider.Cart
	product := neonTetra()

	if err := cart.AddItem(ctx, product); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.AddItem(ctx, product); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := cart.TotalItems(ctx); got != 2 {
		t.Fatalf("expected total items 2, got %d", got)
	}
	if got := cart.TotalPrice(ctx); got != 50000 {
		t.Fatalf("expected total price 50000, got %d", got)
	}

	if err := cart.RemoveItem(ctx, product.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := cart.TotalItems(ctx); got != 0 {
		t.Fatalf("expected total items 0 after remove, got %d", got)
	}

	if err := cart.AddItem(ctx, product); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if err := cart.UpdateQuantity(ctx, product.ID, 5); err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if got := cart.TotalPrice(ctx); got != 125000 {
		t.Fatalf("expected total price 125000, got %d", got)
	}
}

func TestAuthenticatedAddPostsThenRefetches(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	var posts int
	var postedBody map[string]any
	var bearer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/cart":
			mu.Lock()
			posts++
			bearer = r.Header.Get("Authorization")
			json.NewDecoder(r.Body).Decode(&postedBody)
			mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data":{"items":[]}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/cart":
			// Server-side view differs from what was posted: quantity 3.
			w.Write([]byte(`{"data":{"items":[{"product":{"id":"prod-neon-tetra","name":"Neon Tetra","price":25000,"thumbnail":"/t.jpg","slug":"neon-tetra"},"quantity":3}]}}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	session := &stubSession{}
	session.login(User{ID: "user-1", Username: "ahmed"}, "token-1")
	provider := newTestProvider(t, t.TempDir(), server.URL, session, nil)
	cart := provider.Cart

	if err := cart.AddItem(ctx, neonTetra()); err != nil {
		t.Fatalf("add: %v", err)
	}

	mu.Lock()
	if posts != 1 {
		t.Fatalf("expected 1 POST, got %d", posts)
	}
	if bearer != "Bearer token-1" {
		t.Fatalf("expected bearer header, got %q", bearer)
	}
	if postedBody["product_id"] != "prod-neon-tetra" {
		t.Fatalf("unexpected posted body: %v", postedBody)
	}
	mu.Unlock()

	items := cart.Items(ctx)
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("expected server-shaped cart with quantity 3, got %+v", items)
	}
	if items[0].Image != "/t.jpg" {
		t.Fatalf("expected thumbnail mapped to image, got %q", items[0].Image)
	}
	if got := cart.TotalPrice(ctx); got != 75000 {
		t.Fatalf("expected total price 75000, got %d", got)
	}
}

func TestAddSessionExpiredNotifiesAndKeepsState(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"unauthorized","message":"authentication required"}}`))
	}))
	defer server.Close()

	session := &stubSession{}
	session.login(User{ID: "user-1", Username: "ahmed"}, "stale-token")
	notifier := &recordingNotifier{}
	provider := newTestProvider(t, t.TempDir(), server.URL, session, notifier)
	cart := provider.Cart

	err := cart.AddItem(ctx, neonTetra())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if got := notifier.last(); got != MsgSessionExpired {
		t.Fatalf("expected session-expired notification, got %q", got)
	}
	if got := cart.TotalItems(ctx); got != 0 {
		t.Fatalf("expected state unchanged on failure, got %d items", got)
	}
}

func TestAddGenericFailureNotifiesAndKeepsState(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	session := &stubSession{}
	session.login(User{ID: "user-1", Username: "ahmed"}, "token-1")
	notifier := &recordingNotifier{}
	provider := newTestProvider(t, t.TempDir(), server.URL, session, notifier)
	cart := provider.Cart

	if err := cart.AddItem(ctx, neonTetra()); err == nil {
		t.Fatal("expected add to fail")
	}
	if got := notifier.last(); got != MsgCartAddFailed {
		t.Fatalf("expected generic add-failed notification, got %q", got)
	}
	if got := cart.TotalItems(ctx); got != 0 {
		t.Fatalf("expected state unchanged on failure, got %d items", got)
	}
}

func TestSyncWithAccountServerWins(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/api/v1/cart" {
			w.Write([]byte(`{"data":{"items":[{"product":{"id":"prod-heater","name":"Aquarium Heater","price":40000,"slug":"aquarium-heater"},"quantity":1}]}}`))
			return
		}
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	session := &stubSession{}
	provider := newTestProvider(t, t.TempDir(), server.URL, session, nil)
	cart := provider.Cart

	// Anonymous items accumulate locally first.
	if err := cart.AddItem(ctx, neonTetra()); err != nil {
		t.Fatalf("anonymous add: %v", err)
	}

	session.login(User{ID: "user-1", Username: "ahmed"}, "token-1")
	if err := cart.SyncWithAccount(ctx); err != nil {
		t.Fatalf("sync with account: %v", err)
	}

	items := cart.Items(ctx)
	if len(items) != 1 || items[0].ID != "prod-heater" {
		t.Fatalf("expected account cart to replace local items, got %+v", items)
	}
}

func TestSyncWithAccountAnonymousNoop(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, t.TempDir(), "", &stubSession{}, nil)

	if err := provider.Cart.SyncWithAccount(ctx); err != nil {
		t.Fatalf("anonymous sync should be a no-op, got %v", err)
	}
}

func TestCartPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first := newTestProvider(t, dir, "", &stubSession{}, nil)
	if err := first.Cart.AddItem(ctx, neonTetra()); err != nil {
		t.Fatalf("add: %v", err)
	}

	second := newTestProvider(t, dir, "", &stubSession{}, nil)
	items := second.Cart.Items(ctx)
	if len(items) != 1 || items[0].ID != "prod-neon-tetra" {
		t.Fatalf("expected persisted cart to reload, got %+v", items)
	}
}
