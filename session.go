package ridership

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/ridership-insights/dataset"
)

// Session holds one uploaded dataset and its memoized responses. The table is
// immutable, so the cache only ever needs invalidation when the session dies.
type Session struct {
	ID         string
	Name       string
	Table      *dataset.Table
	UploadedAt time.Time

	cache *responseCache
}

// SessionStore keeps the live analysis sessions, one per upload. Nothing is
// persisted; a restart or a DELETE drops the data.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]*Session{}}
}

// Create registers a table under a fresh id and returns the session.
func (s *SessionStore) Create(name string, table *dataset.Table) *Session {
	sess := &Session{
		ID:         uuid.NewString(),
		Name:       name,
		Table:      table,
		UploadedAt: time.Now().UTC(),
		cache:      newResponseCache(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id, or nil when unknown.
func (s *SessionStore) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Delete drops the session for id. Returns whether it existed.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
