package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store tracks authenticated admin sessions in memory, keyed by the
// session id carried in the browser cookie. Sessions live for a fixed
// TTL from creation; activity does not extend them. State is lost on
// restart, which simply logs every admin out.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]time.Time // session id -> expiry
}

// NewStore creates a session store with the given absolute TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]time.Time),
	}
}

// Create registers a new authenticated session and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = s.now().Add(s.ttl)
	s.mu.Unlock()
	return id
}

// Authenticated reports whether the session id belongs to a live
// authenticated session.
func (s *Store) Authenticated(id string) bool {
	if id == "" {
		return false
	}
	s.mu.RLock()
	expiry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if s.now().After(expiry) {
		s.Destroy(id)
		return false
	}
	return true
}

// Destroy removes the session. Destroying an unknown id is a no-op.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of tracked sessions, expired ones included
// until the next prune.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartPruning removes expired sessions on the given interval. The
// returned stop function ends the background loop.
func (s *Store) StartPruning(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				s.prune()
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
	}
}

func (s *Store) prune() {
	now := s.now()
	s.mu.Lock()
	for id, expiry := range s.sessions {
		if now.After(expiry) {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()
}
