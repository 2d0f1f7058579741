package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Service signs and validates the access/refresh token pair. Each token has
// its own secret and TTL; both are signed (HS256), not encrypted.
type Service struct {
	accessSecret  []byte
	accessTTL     time.Duration
	refreshSecret []byte
	refreshTTL    time.Duration
}

// AccessClaims identify the account for a single request window.
type AccessClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwtlib.RegisteredClaims
}

// RefreshClaims carry only the account id.
type RefreshClaims struct {
	UserID int64 `json:"user_id"`
	jwtlib.RegisteredClaims
}

func New(accessSecret string, accessTTL time.Duration, refreshSecret string, refreshTTL time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		accessTTL:     accessTTL,
		refreshSecret: []byte(refreshSecret),
		refreshTTL:    refreshTTL,
	}
}

func (s *Service) GenerateAccessToken(userID int64, username, email string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.accessSecret)
}

func (s *Service) GenerateRefreshToken(userID int64) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.refreshTTL)),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.refreshSecret)
}

func (s *Service) ValidateAccessToken(tokenStr string) (*AccessClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &AccessClaims{}, func(t *jwtlib.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) ValidateRefreshToken(tokenStr string) (*RefreshClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &RefreshClaims{}, func(t *jwtlib.Token) (any, error) {
		return s.refreshSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*RefreshClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
