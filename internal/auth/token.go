package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is the fixed lifetime of issued bearer tokens. Tokens are
// stateless, so a leaked token stays valid until this window elapses; there is
// no revocation list.
const AccessTokenTTL = 30 * 24 * time.Hour

// ErrInvalidToken covers every validation failure: malformed encoding,
// signature mismatch, expiry and a missing subject all collapse into it.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and validates HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService builds a token service around the server-held secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token carrying the subject identifier and a fixed expiry.
func (s *TokenService) Issue(subjectID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the subject identifier.
// No clock-skew leeway is applied.
func (s *TokenService) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
