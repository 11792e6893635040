package sessionstore

import (
	"context"
	"sync"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

// MemoryStore is an in-process ports.SessionStore. Expired sessions are dropped
// lazily when they are read.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]ports.Session
	ttl      time.Duration
	clock    kernel.Clock
}

func NewMemoryStore(ttl time.Duration, clock kernel.Clock) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]ports.Session),
		ttl:      ttl,
		clock:    clock,
	}
}

func (s *MemoryStore) Create(_ context.Context, identityID kernel.UUID) (ports.Session, error) {
	if err := identityID.Validate(); err != nil {
		return ports.Session{}, err
	}

	token, err := newToken()
	if err != nil {
		return ports.Session{}, err
	}

	now := s.clock.Now()
	session := ports.Session{
		Token:      token,
		IdentityID: identityID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session
	return session, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (ports.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return ports.Session{}, errs.NewObjectNotFoundError("session", "token")
	}
	if !s.clock.Now().Before(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return ports.Session{}, errs.NewObjectNotFoundError("session", "token")
	}
	return session, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) DeleteByIdentity(_ context.Context, identityID kernel.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for token, session := range s.sessions {
		if session.IdentityID.IsEqual(identityID) {
			delete(s.sessions, token)
			deleted++
		}
	}
	return deleted, nil
}
