package session

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"dealership-assistant/internal/dialogue"
)

// Session pairs a conversation state with a mutex so the host can
// serialize turns per conversation. The orchestrator itself assumes
// strictly sequential turns.
type Session struct {
	mu    sync.Mutex
	State *dialogue.ConversationState
}

// Lock acquires the per-session turn lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session turn lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// Store keeps per-conversation sessions in a bounded LRU cache, so idle
// conversations eventually fall out instead of growing without bound.
type Store struct {
	mu         sync.Mutex
	cache      *lru.Cache[string, *Session]
	maxHistory int
}

// NewStore creates a session store holding at most capacity sessions.
func NewStore(capacity, maxHistory int) (*Store, error) {
	cache, err := lru.New[string, *Session](capacity)
	if err != nil {
		return nil, fmt.Errorf("creating session cache: %w", err)
	}
	return &Store{cache: cache, maxHistory: maxHistory}, nil
}

// Get returns the session for id, creating it if absent.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.cache.Get(id); ok {
		return sess
	}

	sess := &Session{State: dialogue.NewConversationState(s.maxHistory)}
	s.cache.Add(id, sess)
	return sess
}

// Len reports how many sessions are currently cached.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
