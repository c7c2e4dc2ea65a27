package service

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/theyard/fanpass/internal/core/domain"
)

// AuthService checks the admin password and mints session tokens. The
// password is compared against a bcrypt hash when one is configured, with a
// constant-time comparison against the plain configured secret otherwise.
type AuthService struct {
	password     string
	passwordHash string
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewAuthService(password, passwordHash, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AuthService{
		password:     password,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

// Login validates the password and returns a signed admin session token.
func (s *AuthService) Login(password string) (string, error) {
	if password == "" {
		return "", domain.ErrInvalidCredentials
	}

	switch {
	case s.passwordHash != "":
		if bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) != nil {
			return "", domain.ErrInvalidCredentials
		}
	case s.password != "":
		if subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) != 1 {
			return "", domain.ErrInvalidCredentials
		}
	default:
		// No admin password configured: the panel stays closed.
		return "", domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
