package quiz

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore keeps at most one active session per user. Sessions are
// transient: they live in process memory and are discarded when
// replaced, abandoned or on restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (s *SessionStore) Get(userID uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	return session, ok
}

// Put replaces any previous session for the user.
func (s *SessionStore) Put(userID uuid.UUID, session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = session
}

func (s *SessionStore) Delete(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
