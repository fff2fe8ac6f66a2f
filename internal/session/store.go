package session

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a chat has no active session.
var ErrNotFound = errors.New("session not found")

// Store keeps one session per chat. Sessions never share state with each
// other; the mutex only guards the map itself.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Create replaces any previous session for the chat with a fresh one.
func (st *Store) Create(chatID int64) *Session {
	s := New()

	st.mu.Lock()
	st.sessions[chatID] = s
	st.mu.Unlock()

	return s
}

// Get returns the chat's session.
func (st *Store) Get(chatID int64) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[chatID]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete drops the chat's session.
func (st *Store) Delete(chatID int64) {
	st.mu.Lock()
	delete(st.sessions, chatID)
	st.mu.Unlock()
}

// Count returns the number of live sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// CleanupInactive drops abandoned sessions and returns how many were
// removed.
func (st *Store) CleanupInactive(maxAge time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	now := time.Now()
	for chatID, s := range st.sessions {
		if now.Sub(s.LastActivity) > maxAge {
			delete(st.sessions, chatID)
			removed++
		}
	}
	return removed
}
