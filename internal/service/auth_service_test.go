package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lucasroqe/PDM-App-School/config"
	"github.com/lucasroqe/PDM-App-School/internal/dto"
	"github.com/lucasroqe/PDM-App-School/internal/model"
	"github.com/lucasroqe/PDM-App-School/pkg/jwt"
)

// ── Mock TokenBlacklist ──

type mockBlacklist struct {
	entries map[string]time.Duration
	err     error
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.entries[jti] = ttl
	return nil
}

func setupTestAuthService() (AuthService, *memStore, *jwt.Manager, *mockBlacklist) {
	store := newMemStore()
	repo, _ := newMockRepository(store)
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing",
		TokenTTL:  24 * time.Hour,
	})
	bl := &mockBlacklist{entries: make(map[string]time.Duration)}
	return NewAuthService(repo, jwtMgr, bl, zap.NewNop()), store, jwtMgr, bl
}

func setPassword(u *model.User, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u.PasswordHash = string(hash)
}

// ── Login ──

func TestLogin_Success(t *testing.T) {
	svc, store, jwtMgr, _ := setupTestAuthService()
	u, _ := seedStudent(store, "Ana Souza", "2024001")
	setPassword(u, "senha123")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{Email: u.Email, Password: "senha123"})
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("token must not be empty")
	}
	if result.User.ID != u.ID || result.User.Role != "aluno" || result.User.Name != "Ana Souza" {
		t.Errorf("unexpected user payload: %+v", result.User)
	}

	claims, err := jwtMgr.ParseToken(result.Token)
	if err != nil {
		t.Fatalf("issued token must verify: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != "aluno" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 24*time.Hour {
		t.Errorf("expected 24h expiry, got %s", ttl)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, store, _, _ := setupTestAuthService()
	u, _ := seedProfessor(store, "carlos")
	setPassword(u, "senha123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: u.Email, Password: "errada"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ninguem@escola.br", Password: "senha123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if err.Error() != "Credenciais inválidas" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestLogin_AdminName(t *testing.T) {
	svc, store, _, _ := setupTestAuthService()
	u, _ := seedAdmin(store, "Diretoria")
	setPassword(u, "senha123")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{Email: u.Email, Password: "senha123"})
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if result.User.Name != "Diretoria" || result.User.Role != "admin" {
		t.Errorf("unexpected user payload: %+v", result.User)
	}
}

// ── Logout / Me ──

func TestLogout_BlacklistsUntilExpiry(t *testing.T) {
	svc, _, _, bl := setupTestAuthService()

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	ttl, ok := bl.entries["jti-1"]
	if !ok {
		t.Fatal("expected jti to be blacklisted")
	}
	if ttl <= 59*time.Minute || ttl > time.Hour {
		t.Errorf("expected ttl close to 1h, got %s", ttl)
	}
}

func TestLogout_WithoutBlacklist(t *testing.T) {
	store := newMemStore()
	repo, _ := newMockRepository(store)
	svc := NewAuthService(repo, jwt.NewManager(&config.AuthConfig{JWTSecret: "x", TokenTTL: time.Hour}), nil, zap.NewNop())

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("expected no-op without blacklist, got %v", err)
	}
}

func TestLogout_BlacklistError(t *testing.T) {
	svc, _, _, bl := setupTestAuthService()
	bl.err = errors.New("redis down")

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err == nil {
		t.Error("expected blacklist error to propagate")
	}
}

func TestMe(t *testing.T) {
	svc, store, _, _ := setupTestAuthService()
	u, _ := seedProfessor(store, "Beatriz")

	me, err := svc.Me(context.Background(), identityOf(u))
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.Name != "Beatriz" || me.Role != "professor" {
		t.Errorf("unexpected payload: %+v", me)
	}

	_, err = svc.Me(context.Background(), model.Identity{UserID: 999, Role: model.RoleStudent})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
