// Package studio owns production state and the shot pipeline. Sessions are
// in-memory only; a restart starts everyone fresh, which matches the
// single-operator workflow this service fronts.
package studio

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

// Store is a mutex-guarded session registry keyed by uuid.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a fresh idle session and returns it.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString())
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id or a not-found error.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, id)
	}
	return sess, nil
}

// Delete drops a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
