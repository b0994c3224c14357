// Package auth issues and verifies the HS256 access tokens that carry a
// caller's identity to the gRPC and HTTP surfaces.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "gophportal"

// Claims are the registered claims plus the portal identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"uid"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// GenerateToken signs an access token for id valid for validity.
func GenerateToken(id domain.Identity, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID: id.UserID,
		Email:  id.Email,
		Role:   id.Role,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies tokenString and returns the identity it carries.
// Expired tokens yield common.ErrTokenExpired; any other defect yields
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (domain.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, common.ErrTokenExpired
		}
		return domain.Identity{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" || !claims.Role.Valid() {
		return domain.Identity{}, common.ErrInvalidToken
	}

	return domain.Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
