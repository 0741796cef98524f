package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BusinessClaims are the custom claims carried in an access token. The
// subject holds the user slug; the business slug scopes every query the
// request makes.
type BusinessClaims struct {
	BusinessSlug string `json:"businessSlug"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a new access token scoped to a business.
func GenerateJWT(userSlug, businessSlug, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	expiresAt := time.Now().Add(expiryDuration)
	claims := BusinessClaims{
		BusinessSlug: businessSlug,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userSlug,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, expiresAt, err
}

// ParseAndValidateJWT parses a token string, validates its signature and
// standard claims, and returns the business claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*BusinessClaims, error) {
	claims := &BusinessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
