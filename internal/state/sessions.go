package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one browser session's state: constructed on first visit,
// discarded on expiry. Holds only the admin flag; all data state lives in
// App.
type Session struct {
	ID        string
	Admin     bool
	CreatedAt time.Time
}

// Sessions tracks active browser sessions by cookie id.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewSessions creates a session registry with the given lifetime.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Start creates a fresh session.
func (s *Sessions) Start() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.sessions[session.ID] = session
	return session
}

// Get returns the session for an id, nil when unknown or expired.
func (s *Sessions) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || time.Since(session.CreatedAt) > s.ttl {
		return nil
	}
	return session
}

// SetAdmin flips the admin flag on an existing session.
func (s *Sessions) SetAdmin(id string, admin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Admin = admin
	}
}

// Drop removes a session (logout).
func (s *Sessions) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Sessions) expireLocked() {
	for id, session := range s.sessions {
		if time.Since(session.CreatedAt) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
