package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used in tests and as a dev fallback
// when no Redis is configured. Sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memorySession)}
}

func (s *MemoryStore) Create(_ context.Context, userID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return 0, ErrNotFound
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return 0, ErrNotFound
	}
	return sess.userID, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
