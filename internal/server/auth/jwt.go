// Package auth issues and verifies the API keys accepted by the store.
// A key is an HS256 JWT whose role claim selects the row policy.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Role names understood by the store.
const (
	RoleAnon    = "anon"
	RoleService = "service_role"
)

// Claims carries the standard claims plus the caller role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// ValidRole reports whether role is one the store knows.
func ValidRole(role string) bool {
	return role == RoleAnon || role == RoleService
}

// GenerateKey signs a key for role. A non-positive validity yields a key
// without expiry.
func GenerateKey(role string, secretKey []byte, validity time.Duration) (string, error) {
	if !ValidRole(role) {
		return "", fmt.Errorf("%w: unknown role %q", common.ErrValidation, role)
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   "deckkeeper",
		},
		Role: role,
	}
	if validity > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validity))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// RoleFromKey verifies tokenString and returns its role.
// Expired keys yield common.ErrTokenExpired, anything else that fails
// verification yields common.ErrInvalidToken.
func RoleFromKey(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || !ValidRole(claims.Role) {
		return "", common.ErrInvalidToken
	}

	return claims.Role, nil
}
