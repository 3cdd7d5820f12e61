package jwt

import (
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/lucasroqe/PDM-App-School/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  24 * time.Hour,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateToken(42, "professor")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", claims.UserID)
	}
	if claims.Role != "professor" {
		t.Errorf("expected Role=professor, got %s", claims.Role)
	}
	if claims.Issuer != "app-scholar" {
		t.Errorf("expected Issuer=app-scholar, got %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI must not be empty")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("expected TTL around 24h, got %v", ttl)
	}
}

func TestGenerateToken_UniqueJTI(t *testing.T) {
	m := newTestManager()

	t1, _ := m.GenerateToken(1, "aluno")
	t2, _ := m.GenerateToken(1, "aluno")
	c1, _ := m.ParseToken(t1)
	c2, _ := m.ParseToken(t2)
	if c1.ID == c2.ID {
		t.Error("each token must carry its own JTI")
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("invalid.token.string")
	if err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret: "different-secret-key",
		TokenTTL:  time.Hour,
	})

	token, _ := m1.GenerateToken(1, "admin")
	if _, err := m2.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("token signed with another secret must be rejected, got %v", err)
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing",
		TokenTTL:  time.Millisecond,
	})

	token, _ := m.GenerateToken(1, "admin")
	time.Sleep(1100 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_RejectsNoneAlgorithm(t *testing.T) {
	m := newTestManager()

	claims := Claims{
		UserID: 1,
		Role:   "admin",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, claims)
	s, err := token.SignedString(jwtv5.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := m.ParseToken(s); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for alg=none, got %v", err)
	}
}
