package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/durangezer/portfolio-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager handles admin JWT generation and validation
type TokenManager struct {
	secret   string
	tokenTTL time.Duration
}

// NewTokenManager creates a new TokenManager
func NewTokenManager(secret string, tokenTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Issue creates a signed admin token for the given throttling identity.
// The expiry is embedded in the signed claims, so tampering with it is
// detectable at validation time.
func (tm *TokenManager) Issue(identity string) (string, error) {
	now := time.Now()

	claims := &models.AdminClaims{
		Admin:    true,
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(tm.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies a token's signature and expiry and returns its claims.
// Returns models.ErrTokenExpired when the token is past its expiry and
// models.ErrTokenInvalid for signature mismatches or malformed tokens.
func (tm *TokenManager) Validate(tokenString string) (*models.AdminClaims, error) {
	claims := &models.AdminClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tm.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, models.ErrTokenExpired
		}
		return nil, models.ErrTokenInvalid
	}

	if !token.Valid || !claims.Admin {
		return nil, models.ErrTokenInvalid
	}

	return claims, nil
}
