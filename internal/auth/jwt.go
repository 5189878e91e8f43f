package auth

import (
	"errors"
	"fmt"
	"permit-portal/internal/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTTL    = 24 * time.Hour
	tokenIssuer = "permit-portal"
)

var ErrInvalidToken = errors.New("invalid token")

type AppClaims struct {
	UserID string      `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *AppClaims) Principal() Principal {
	return Principal{UserID: c.UserID, Role: c.Role}
}

func GenerateJWT(user *models.User, secret string) (string, error) {
	now := time.Now()

	claims := &AppClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyJWT returns the claims of a valid token. Every failure wraps
// ErrInvalidToken; the jwt package sentinel (expired, bad signature, ...)
// stays in the chain.
func VerifyJWT(tokenString, secret string) (*AppClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AppClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AppClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
