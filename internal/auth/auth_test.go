package auth

import (
	"permit-portal/internal/models"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	password := "mySecretPassword123"
	hash, err := HashPassword(password)

	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, password, hash)

	again, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, hash, again, "Hashes should be salted")
}

func TestCheckPasswordHash(t *testing.T) {
	password := "mySecretPassword123"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	match := CheckPasswordHash(password, hash)
	require.True(t, match, "Password should match the hash")

	wrongPassword := "wrongPassword"
	match = CheckPasswordHash(wrongPassword, hash)
	require.False(t, match, "Wrong password should not match the hash")
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	secret := "my_super_secret_key_for_testing"
	user := &models.User{
		ID:   "user-123",
		Role: models.RoleContractor,
	}

	tokenString, err := GenerateJWT(user, secret)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := VerifyJWT(tokenString, secret)
	require.NoError(t, err)
	require.NotNil(t, claims)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Role, claims.Role)
	require.Equal(t, Principal{UserID: user.ID, Role: user.Role}, claims.Principal())
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	require.WithinDuration(t, time.Now(), claims.IssuedAt.Time, 5*time.Second)

	_, err = VerifyJWT(tokenString, "wrong_secret")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestVerifyJWT_Expired(t *testing.T) {
	secret := "my_super_secret_key_for_testing"

	issuedAt := time.Now().Add(-25 * time.Hour)
	claimsExpired := &AppClaims{
		UserID: "user-123",
		Role:   models.RoleHomeowner,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
			Issuer:    tokenIssuer,
		},
	}
	tokenExpired := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsExpired)
	tokenStringExpired, err := tokenExpired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = VerifyJWT(tokenStringExpired, secret)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyJWT_Tampered(t *testing.T) {
	secret := "my_super_secret_key_for_testing"
	user := &models.User{ID: "user-1", Role: models.RoleHomeowner}

	tokenString, err := GenerateJWT(user, secret)
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	// Swap the payload for one claiming admin, keeping the original signature.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &AppClaims{
		UserID: user.ID,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    tokenIssuer,
		},
	})
	forgedString, err := forged.SignedString([]byte("attacker_key"))
	require.NoError(t, err)
	forgedParts := strings.Split(forgedString, ".")

	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]
	_, err = VerifyJWT(tampered, secret)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = VerifyJWT("not-a-token", secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyJWT_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &AppClaims{
		UserID: "user-1",
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    tokenIssuer,
		},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyJWT(tokenString, "secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}
