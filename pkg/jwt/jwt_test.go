package jwt

import (
	"testing"
	"time"

	"dental-office-backend/config"

	"github.com/google/uuid"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService()
	userID := uuid.New()

	token, tokenID, err := s.GenerateAccessToken(userID, "user@example.com", 3)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a token ID")
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("user ID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.RoleID != 3 {
		t.Errorf("role ID = %d, want 3", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token ID mismatch: %q vs %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	s := newTestService()

	token, _, err := s.GenerateRefreshToken(uuid.New(), "user@example.com", 2)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type = %q, want refresh", claims.TokenType)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := newTestService()
	token, _, err := s.GenerateAccessToken(uuid.New(), "user@example.com", 1)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	s := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, _, err := s.GenerateAccessToken(uuid.New(), "user@example.com", 1)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := s.ValidateToken(token); err == nil {
		t.Error("expired token must not validate")
	}
}
