package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidToken = errors.New("invalid session token")

type SessionClaims struct {
	IdentityID string `json:"identity_id"`
	jwt.StandardClaims
}

// GenerateSessionToken signs a token carrying the identity id. Session
// tokens never expire; an unknown identity is re-provisioned instead.
func GenerateSessionToken(identityID, secret string) (string, error) {
	claims := SessionClaims{
		IdentityID: identityID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString([]byte(secret))
}

// ParseSessionToken verifies the token and returns the identity id it carries.
func ParseSessionToken(token, secret string) (string, error) {
	tokenClaims, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if tokenClaims != nil {
		if claims, ok := tokenClaims.Claims.(*SessionClaims); ok && tokenClaims.Valid {
			return claims.IdentityID, nil
		}
	}

	if err == nil {
		err = ErrInvalidToken
	}
	return "", err
}
