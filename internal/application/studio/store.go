package studio

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// Store owns the current snapshot of one studio session.
type Store interface {
	SessionID() shared.SessionID

	// Snapshot returns the latest committed state. Callers must not modify it.
	Snapshot() *game.State

	// Version counts committed updates
	Version() int

	// Update runs fn against the latest snapshot and commits what it returns.
	// Updates are serialised; an error commits nothing.
	Update(ctx context.Context, fn func(*game.State) (*game.State, error)) (*game.State, error)
}

// MemoryStore keeps the session in process memory.
type MemoryStore struct {
	mu        sync.Mutex
	sessionID shared.SessionID
	state     *game.State
	version   int
}

// NewMemoryStore creates a store seeded with initial
func NewMemoryStore(sessionID shared.SessionID, initial *game.State) *MemoryStore {
	return &MemoryStore{sessionID: sessionID, state: initial}
}

func (s *MemoryStore) SessionID() shared.SessionID {
	return s.sessionID
}

func (s *MemoryStore) Snapshot() *game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *MemoryStore) Version() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *MemoryStore) Update(ctx context.Context, fn func(*game.State) (*game.State, error)) (*game.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.state)
	if err != nil {
		return s.state, err
	}
	if next == nil {
		return s.state, fmt.Errorf("update returned a nil state")
	}
	s.state = next
	s.version++
	return next, nil
}
