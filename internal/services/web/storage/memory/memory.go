// Package memory provides an in-process session store.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mindpath/mindpath/internal/journalapi"
	webstorage "github.com/mindpath/mindpath/internal/services/web/storage"
)

// Store is a thread-safe in-memory session store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]webstorage.Session
	now      func() time.Time
}

// New creates an empty session store.
func New() *Store {
	return &Store{
		sessions: make(map[string]webstorage.Session),
		now:      time.Now,
	}
}

// Create stores a new session.
func (s *Store) Create(_ context.Context, session webstorage.Session) error {
	id := strings.TrimSpace(session.ID)
	if id == "" {
		return fmt.Errorf("session id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[id]; exists {
		return fmt.Errorf("session %q already exists", id)
	}
	s.sessions[id] = clone(session)
	return nil
}

// Get returns a session by id. Expired sessions are dropped on read.
func (s *Store) Get(_ context.Context, id string) (webstorage.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return webstorage.Session{}, webstorage.ErrNotFound
	}
	if session.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return webstorage.Session{}, webstorage.ErrNotFound
	}
	return clone(session), nil
}

// Update replaces an existing session.
func (s *Store) Update(_ context.Context, session webstorage.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		return webstorage.ErrNotFound
	}
	s.sessions[session.ID] = clone(session)
	return nil
}

// Delete removes a session by id. Missing ids are not an error.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// DeleteExpired removes every session expired at now.
func (s *Store) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// clone copies the slices and pointers of session so callers cannot mutate
// stored state.
func clone(session webstorage.Session) webstorage.Session {
	if session.LastAnalysis != nil {
		analysis := *session.LastAnalysis
		session.LastAnalysis = &analysis
	}
	if session.Weekly != nil {
		session.Weekly = append([]journalapi.EmotionPoint(nil), session.Weekly...)
	}
	if session.Provisional != nil {
		session.Provisional = append([]journalapi.Entry(nil), session.Provisional...)
	}
	return session
}
