package contextstore

import (
	"sync"
	"time"

	"github.com/hupe1980/dialogmesh/core"
)

// InMemoryStore is a volatile ContextStore implementation keeping per-user
// conversation contexts in a process local map. It is safe for concurrent
// access; contexts are lost on restart, which matches the engine's contract.
// Each returned context is cloned to prevent external mutation of internal
// state.
type InMemoryStore struct {
	mu       sync.RWMutex
	contexts map[string]*core.Context
}

// NewInMemoryStore constructs an empty in-memory context store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{contexts: make(map[string]*core.Context)}
}

// Get returns an existing context (clone) or lazily creates a fresh
// main-menu context for an unknown user.
func (s *InMemoryStore) Get(userID string) (*core.Context, error) {
	s.mu.RLock()
	if ctx, ok := s.contexts[userID]; ok {
		defer s.mu.RUnlock()
		return ctx.Clone(), nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx, ok := s.contexts[userID]; ok {
		return ctx.Clone(), nil
	}
	ctx := core.NewContext(userID)
	s.contexts[userID] = ctx
	return ctx.Clone(), nil
}

// Save stores a clone of the provided context snapshot, bumping its Updated
// timestamp.
func (s *InMemoryStore) Save(ctx *core.Context) error {
	clone := ctx.Clone()
	clone.Updated = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contexts[ctx.UserID] = clone
	return nil
}

// Len returns the number of tracked users.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contexts)
}
