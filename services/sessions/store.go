// Package sessions issues and resolves the opaque tokens that bind a request
// to an authenticated account. Sessions live in process memory only; a
// restart signs everyone out.
package sessions

import (
	"fmt"
	"sync"
	"time"

	"wayfare/utils"
)

type session struct {
	username string
	expiry   time.Time
}

// Store manages session tokens.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]session
}

// NewStore returns a session store whose tokens expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]session),
	}
}

// Create mints a new token bound to the username.
func (s *Store) Create(username string) (string, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = session{
		username: username,
		expiry:   time.Now().Add(s.ttl),
	}

	// Sweep expired sessions while we hold the lock
	now := time.Now()
	for t, sess := range s.sessions {
		if sess.expiry.Before(now) {
			delete(s.sessions, t)
		}
	}

	return token, nil
}

// Resolve returns the username bound to the token, if the token is known and
// unexpired.
func (s *Store) Resolve(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok || sess.expiry.Before(time.Now()) {
		return "", false
	}
	return sess.username, true
}

// Invalidate removes the token's binding. Unknown tokens are a no-op.
func (s *Store) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}
