package storefront

import (
	"sync"
	"testing"
	"time"

	"github.com/fishweb-iq/fishweb-backend/pkg/config"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
	"github.com/rs/zerolog"
)

type stubSession struct {
	mu    sync.Mutex
	user  *User
	token string
}

func (s *stubSession) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *stubSession) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *stubSession) login(user User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.token = token
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.messages) == 0 {
		return ""
	}
	return n.messages[len(n.messages)-1]
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "storefront-test", Level: zerolog.ErrorLevel})
}

func newTestProvider(t *testing.T, stateDir, baseURL string, session Session, notifier Notifier) *Provider {
	t.Helper()

	if baseURL == "" {
		baseURL = "http://127.0.0.1:0"
	}
	provider, err := NewProvider(ProviderParams{
		Config: config.StorefrontConfig{
			APIBaseURL:     baseURL,
			StateDir:       stateDir,
			RequestTimeout: 2 * time.Second,
		},
		Session:  session,
		Notifier: notifier,
		Logger:   testLogger(),
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	t.Cleanup(provider.Close)
	return provider
}

func neonTetra() Product {
	return Product{
		ID:       "prod-neon-tetra",
		Name:     "Neon Tetra",
		Slug:     "neon-tetra",
		Brand:    "FishWeb",
		Category: "fish",
		Price:    25000,
		Image:    "/images/neon-tetra.jpg",
		Rating:   4.8,
	}
}
