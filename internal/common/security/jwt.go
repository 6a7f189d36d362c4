package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs and verifies bearer tokens with a single HS256 secret.
// It is constructed once at startup and passed to whoever needs it; there is
// no package-level state.
//
// Tokens carry no exp claim. A token stays cryptographically valid forever
// and is invalidated only by removing it from the server-side token store.
type TokenIssuer struct {
	auth *jwtauth.JWTAuth
}

func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{auth: jwtauth.New("HS256", secret, nil)}
}

// Sign mints a token embedding the principal id.
func (i *TokenIssuer) Sign(principalID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  principalID,
		"iat": time.Now().Unix(),
	}
	_, tokenString, err := i.auth.Encode(claims)
	return tokenString, err
}

// JWTAuth exposes the underlying verifier for jwtauth middleware wiring.
func (i *TokenIssuer) JWTAuth() *jwtauth.JWTAuth {
	return i.auth
}

// PrincipalFromClaims extracts the principal id a token was signed with.
func PrincipalFromClaims(claims map[string]interface{}) (string, error) {
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", errors.New("id claim is missing or not a string")
	}
	return id, nil
}
