package session

import (
	"sync"

	"hrbot/internal/domain"
)

// Store keeps per-user conversation sessions
type Store interface {
	Get(userID int64) *domain.Session
	Set(s *domain.Session)
	Clear(userID int64)
}

// MemoryStore is an in-process Store safe for concurrent use.
// Sessions are transient and do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewMemoryStore creates an empty session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]*domain.Session),
	}
}

// Get returns the user's session, or nil if there is none
func (m *MemoryStore) Get(userID int64) *domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[userID]
}

// Set stores the session under its user id
func (m *MemoryStore) Set(s *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.UserID] = s
}

// Clear removes the user's session
func (m *MemoryStore) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
