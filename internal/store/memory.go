package store

import (
	"sync"
	"time"

	"github.com/safepay/fraudcheck/internal/domain"
)

// Memory is an in-process session store guarded by a single coarse lock.
// Sessions do not survive a restart; that is the deployment contract.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// Ensure Memory implements Store.
var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory session store.
func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]*domain.Session),
	}
}

// Put stores a session, replacing any existing session with the same id.
func (m *Memory) Put(session *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID] = session.Clone()
}

// Get retrieves a snapshot of the session, or false if absent.
func (m *Memory) Get(id string) (*domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// Update applies fn to the stored session while holding the store lock.
// fn must not block; external calls belong outside the lock.
func (m *Memory) Update(id string, fn func(*domain.Session)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return false
	}
	fn(s)
	return true
}

// Delete removes a session.
func (m *Memory) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}

// Sweep removes every session whose age exceeds ttl and returns the
// removed ids.
func (m *Memory) Sweep(now time.Time, ttl time.Duration) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed []string
	for id, s := range m.sessions {
		if s.Expired(now, ttl) {
			delete(m.sessions, id)
			removed = append(removed, id)
		}
	}
	return removed
}

// Len returns the number of stored sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
