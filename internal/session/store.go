package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a token does not resolve to a live session.
var ErrNotFound = errors.New("session not found")

// Store keeps server-side session records keyed by an opaque token.
type Store interface {
	// Create opens a session for userID and returns its token.
	Create(ctx context.Context, userID uint, ttl time.Duration) (string, error)
	// Get resolves a token to the owning user id.
	Get(ctx context.Context, token string) (uint, error)
	// Destroy removes a session. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}
