package middleware

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const SessionCookieName = "crm_session"

// DefaultSessionTTL is used when no TTL is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour // one week

// Session associates a browser's cookie token with an authenticated user.
type Session struct {
	UserID    int64
	Username  string
	IsAdmin   bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore defines the session storage interface.
// Implementations could use memory, SQLite, Redis, etc.
type SessionStore interface {
	Create(userID int64, username string, isAdmin bool) string
	Get(id string) (Session, bool)
	Delete(id string)
}

// MemorySessionStore is an in-memory implementation of SessionStore.
// Sessions are lost on server restart.
type MemorySessionStore struct {
	mu  sync.RWMutex
	m   map[string]Session
	ttl time.Duration
}

// NewMemorySessionStore creates a new in-memory session store. A zero
// ttl falls back to DefaultSessionTTL.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemorySessionStore{
		m:   make(map[string]Session),
		ttl: ttl,
	}
}

// Create creates a new session for the given user and returns its token.
func (s *MemorySessionStore) Create(userID int64, username string, isAdmin bool) string {
	id := uuid.NewString()
	now := time.Now()

	s.mu.Lock()
	s.m[id] = Session{
		UserID:    userID,
		Username:  username,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	return id
}

// Get retrieves a session by token. Returns false if not found or expired.
func (s *MemorySessionStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.m[id]
	s.mu.RUnlock()

	if !ok {
		return Session{}, false
	}

	if time.Now().After(sess.ExpiresAt) {
		// Expired: clean up and treat as missing
		s.mu.Lock()
		delete(s.m, id)
		s.mu.Unlock()
		return Session{}, false
	}

	return sess, true
}

// Delete removes a session by token.
func (s *MemorySessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
}
