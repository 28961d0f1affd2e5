package auth

import (
	"context"
	"testing"
	"time"

	pkgAuth "github.com/fishweb-iq/fishweb-backend/pkg/auth"
	"github.com/fishweb-iq/fishweb-backend/pkg/auth/session"
	"github.com/fishweb-iq/fishweb-backend/pkg/config"
	"github.com/fishweb-iq/fishweb-backend/pkg/db/models"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/fishweb-iq/fishweb-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestServiceLoginIssuesTokenPair(t *testing.T) {
	password := "coral-reef-9"
	hashed := mustHashPassword(t, password)
	user := &models.User{
		ID:           uuid.New(),
		Username:     "ahmed",
		PasswordHash: hashed,
		IsAdmin:      true,
	}
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "fishweb",
		ExpirationMinutes: 30,
	}

	svc, sessions, err := buildTestService(user, cfg)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	resp, err := svc.Login(context.Background(), LoginRequest{
		Username: user.Username,
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(cfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if claims.UserID != user.ID {
		t.Fatalf("expected user id %s, got %s", user.ID, claims.UserID)
	}
	if !claims.IsAdmin {
		t.Fatal("expected admin claim to be preserved")
	}
	if resp.RefreshToken == "" {
		t.Fatal("expected refresh token to be set")
	}
	if sessions.generatedFor != claims.ID {
		t.Fatalf("session stored under %q, jwt jti is %q", sessions.generatedFor, claims.ID)
	}
	if user.LastLoginAt == nil {
		t.Fatal("expected last login timestamp to be recorded")
	}
}

func TestServiceLoginWrongPassword(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Username:     "sara",
		PasswordHash: mustHashPassword(t, "right-password"),
	}
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "fishweb",
		ExpirationMinutes: 30,
	}

	svc, _, err := buildTestService(user, cfg)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{
		Username: user.Username,
		Password: "wrong-password",
	})
	if err == nil {
		t.Fatal("expected unauthorized for wrong password")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceLoginUnknownUser(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "fishweb",
		ExpirationMinutes: 30,
	}

	svc, err := NewService(ServiceParams{
		UserRepo:       stubUserRepo{err: gorm.ErrRecordNotFound},
		SessionManager: &stubSessionManager{refreshToken: "refresh-token"},
		JWTConfig:      cfg,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceRefreshRotatesSession(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "fishweb",
		ExpirationMinutes: 30,
	}
	userID := uuid.New()
	oldAccessID := "old-access-id"
	accessToken, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:   userID,
		Username: "ahmed",
		JTI:      oldAccessID,
	})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	sessions := &stubSessionManager{
		refreshToken:   "refresh-token",
		rotateAccessID: "new-access-id",
		rotateToken:    "new-refresh-token",
	}
	svc, err := NewService(ServiceParams{
		UserRepo:       stubUserRepo{},
		SessionManager: sessions,
		JWTConfig:      cfg,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  accessToken,
		RefreshToken: "refresh-token",
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if resp.RefreshToken != "new-refresh-token" {
		t.Fatalf("expected rotated refresh token, got %q", resp.RefreshToken)
	}
	if sessions.rotatedFrom != oldAccessID {
		t.Fatalf("expected rotation from %q, got %q", oldAccessID, sessions.rotatedFrom)
	}

	claims, err := pkgAuth.ParseAccessToken(cfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse rotated access token: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id lost across refresh: %s vs %s", claims.UserID, userID)
	}
	if claims.ID != "new-access-id" {
		t.Fatalf("expected new jti, got %q", claims.ID)
	}
}

func TestServiceRefreshInvalidToken(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "fishweb",
		ExpirationMinutes: 30,
	}
	accessToken, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:   uuid.New(),
		Username: "sara",
	})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	svc, err := NewService(ServiceParams{
		UserRepo:       stubUserRepo{},
		SessionManager: &stubSessionManager{rotateErr: session.ErrInvalidRefreshToken},
		JWTConfig:      cfg,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  accessToken,
		RefreshToken: "stale",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func buildTestService(user *models.User, jwtCfg config.JWTConfig) (Service, *stubSessionManager, error) {
	sessionMgr := &stubSessionManager{refreshToken: "refresh-token"}
	svc, err := NewService(ServiceParams{
		UserRepo:       stubUserRepo{user: user},
		SessionManager: sessionMgr,
		JWTConfig:      jwtCfg,
	})
	return svc, sessionMgr, err
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

type stubUserRepo struct {
	user *models.User
	err  error
}

func (s stubUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s stubUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if s.user != nil && s.user.ID == id {
		s.user.LastLoginAt = &at
	}
	return nil
}

type stubSessionManager struct {
	refreshToken   string
	generatedFor   string
	rotateAccessID string
	rotateToken    string
	rotatedFrom    string
	rotateErr      error
	revoked        []string
}

func (s *stubSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	s.generatedFor = accessID
	return s.refreshToken, nil
}

func (s *stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	if s.rotateErr != nil {
		return "", "", s.rotateErr
	}
	s.rotatedFrom = oldAccessID
	return s.rotateAccessID, s.rotateToken, nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}
