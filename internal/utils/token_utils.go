package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSigner mints and checks the HS256 bearer tokens the API hands out.
// The zero value is unusable; populate all three fields.
type TokenSigner struct {
	Secret string
	Issuer string
	Expiry time.Duration
}

// Sign issues a token carrying subject as its subject claim and returns it
// together with its expiry time.
func (s TokenSigner) Sign(subject string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.Expiry)
	claims := jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses a token string and validates its signature and time claims.
// The error covers expired, not-yet-valid, malformed and badly signed tokens.
func (s TokenSigner) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
