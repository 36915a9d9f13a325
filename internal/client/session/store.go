// Package session holds the in-memory authenticated identity and the
// process-wide session lifecycle event bus.
//
// The identity is never persisted: it is rehydrated from the server on every
// program start and replaced wholesale on each successful identity fetch.
package session

import (
	"sync"

	"github.com/Gescomph/gescomph-portal/internal/client/models"
)

// Store is the single holder of the current identity. A nil snapshot means
// "no session". Guards and the shell read it synchronously; the auth
// transport is the only writer.
type Store struct {
	mu       sync.RWMutex
	user     *models.User
	watchers map[int]func(*models.User)
	nextID   int
}

func NewStore() *Store {
	return &Store{watchers: make(map[int]func(*models.User))}
}

// Set replaces the identity and notifies watchers. A nil user is equivalent
// to Clear.
func (s *Store) Set(u *models.User) {
	s.mu.Lock()
	s.user = u
	fns := s.watcherList()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(u)
	}
}

// Clear drops the identity and notifies watchers.
func (s *Store) Clear() {
	s.Set(nil)
}

// ClearIfSet drops the identity and reports whether one was held, in a
// single guarded step. Of several concurrent callers exactly one observes
// true; watchers run only for that caller.
func (s *Store) ClearIfSet() bool {
	s.mu.Lock()
	had := s.user != nil
	s.user = nil
	var fns []func(*models.User)
	if had {
		fns = s.watcherList()
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(nil)
	}
	return had
}

// Snapshot returns the current identity, or nil when no session exists.
func (s *Store) Snapshot() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether an identity is currently held.
func (s *Store) Authenticated() bool {
	return s.Snapshot() != nil
}

// Watch registers fn to run on every identity change and returns an
// unsubscribe func. Watchers registered after a change do not see it.
func (s *Store) Watch(fn func(*models.User)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

func (s *Store) watcherList() []func(*models.User) {
	fns := make([]func(*models.User), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	return fns
}
