package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	id := uuid.New()

	tok, err := svc.GenerateAccessToken(id, "asha@example.com", "candidate")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != id {
		t.Fatalf("user id = %s, want %s", claims.UserID, id)
	}
	if claims.Email != "asha@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
	if claims.Role != "candidate" {
		t.Fatalf("role = %q", claims.Role)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("token type = %q", claims.TokenType)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatal("access token classified as refresh")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	id := uuid.New()

	tok, err := svc.GenerateRefreshToken(id)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != id {
		t.Fatalf("user id = %s, want %s", claims.UserID, id)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatal("refresh token not classified as refresh")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ValidateToken("not-a-jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateForeignSignature(t *testing.T) {
	svc := newTestService()
	other := NewHMACService("other-access", "other-refresh", time.Minute, time.Minute)

	tok, err := other.GenerateAccessToken(uuid.New(), "", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
