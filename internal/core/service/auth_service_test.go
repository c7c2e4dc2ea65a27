package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/theyard/fanpass/internal/core/domain"
)

const testSecret = "test-session-secret"

func TestAuthService_Login_PlainPassword(t *testing.T) {
	svc := NewAuthService("open-sesame", "", testSecret, time.Hour)

	if _, err := svc.Login("wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty password must be rejected, got %v", err)
	}

	token, err := svc.Login("open-sesame")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}
}

func TestAuthService_Login_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	svc := NewAuthService("", string(hash), testSecret, time.Hour)

	if _, err := svc.Login("wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("open-sesame"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
}

func TestAuthService_Login_HashWinsOverPlain(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	svc := NewAuthService("plain-pw", string(hash), testSecret, time.Hour)

	if _, err := svc.Login("plain-pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("plain password must not work once a hash is configured, got %v", err)
	}
	if _, err := svc.Login("hashed-pw"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
}

func TestAuthService_Login_Unconfigured(t *testing.T) {
	svc := NewAuthService("", "", testSecret, time.Hour)

	if _, err := svc.Login("anything"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unconfigured panel must stay closed, got %v", err)
	}
}

func TestAuthService_TokenClaims(t *testing.T) {
	svc := NewAuthService("open-sesame", "", testSecret, 2*time.Hour)

	tokenStr, err := svc.Login("open-sesame")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", token.Claims)
	}
	if claims["role"] != "admin" {
		t.Fatalf("expected admin role claim, got %v", claims["role"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim")
	}
	until := time.Until(time.Unix(int64(exp), 0))
	if until < time.Hour || until > 3*time.Hour {
		t.Fatalf("expiry outside the configured ttl: %v", until)
	}
}
