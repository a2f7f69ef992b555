package storage

import (
	"sync"
	"time"
)

type sessionEntry[T any] struct {
	value     T
	touchedAt time.Time
}

// SessionStore keeps one in-memory game per chat. Nothing survives a restart.
type SessionStore[T any] struct {
	mu       sync.RWMutex
	sessions map[int64]*sessionEntry[T]
	now      func() time.Time
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore[T any]() *SessionStore[T] {
	return &SessionStore[T]{
		sessions: make(map[int64]*sessionEntry[T]),
		now:      time.Now,
	}
}

// Get returns the game of chatID.
func (s *SessionStore[T]) Get(chatID int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[chatID]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

// GetOrCreate returns the game of chatID, storing create() first if there is none.
// The entry counts as touched either way.
func (s *SessionStore[T]) GetOrCreate(chatID int64, create func() T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[chatID]
	if !ok {
		e = &sessionEntry[T]{value: create()}
		s.sessions[chatID] = e
	}
	e.touchedAt = s.now()

	return e.value
}

// Put stores value for chatID, replacing any previous game.
func (s *SessionStore[T]) Put(chatID int64, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chatID] = &sessionEntry[T]{value: value, touchedAt: s.now()}
}

// Touch marks the game of chatID as used now.
func (s *SessionStore[T]) Touch(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[chatID]; ok {
		e.touchedAt = s.now()
	}
}

// Delete removes the game of chatID.
func (s *SessionStore[T]) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}

// Len returns the number of stored games.
func (s *SessionStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// EvictIdle removes every game last touched before cutoff and returns how many were removed.
func (s *SessionStore[T]) EvictIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for chatID, e := range s.sessions {
		if e.touchedAt.Before(cutoff) {
			delete(s.sessions, chatID)
			evicted++
		}
	}
	return evicted
}
