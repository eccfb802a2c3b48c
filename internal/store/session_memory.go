package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
)

// memorySessionStore keeps sessions in process memory. Sessions are lost on
// restart and are not shared between replicas.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionStore returns an empty in-process [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]models.Session)}
}

func (m *memorySessionStore) CreateSession(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session
	return nil
}

func (m *memorySessionStore) FindSession(_ context.Context, token string) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (m *memorySessionStore) DeleteSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func (m *memorySessionStore) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for token, s := range m.sessions {
		if s.IsExpired(now) {
			delete(m.sessions, token)
			n++
		}
	}
	return n, nil
}
