package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The session cookie carries a signed token wrapping the session id, so a
// tampered cookie is rejected before the session store is consulted. The
// store itself remains the source of truth for session lifetime.

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(os.Getenv("SESSION_SECRET"))
}

func SignSessionToken(sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

func ParseSessionToken(value string) (string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return "", err
	}
	return claims.SessionID, nil
}
