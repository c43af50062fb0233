package sessionstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

// MemoryStore is an in-memory domain.SessionStore for tests and local runs
// without redis. Sessions are deep-copied on load and save so callers never
// share mutable state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*domain.Session)}
}

// Load returns a copy of the stored session, or a fresh default session.
func (s *MemoryStore) Load(_ context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.sessions[sessionID]
	if !ok {
		return domain.NewSession(), nil
	}
	return copySession(stored)
}

// Save stores a copy of the session.
func (s *MemoryStore) Save(_ context.Context, sessionID string, session *domain.Session) error {
	copied, err := copySession(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = copied
	return nil
}

// Len returns the number of stored sessions. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func copySession(in *domain.Session) (*domain.Session, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	out := &domain.Session{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ domain.SessionStore = (*MemoryStore)(nil)
